package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <puzzle> [moves...]",
	Short: "Step through a move string interactively",
	Long: `Step through a move string one token at a time and watch the state change.

With no moves given, the most recently saved scramble of the puzzle is used.

Keyboard shortcuts:
  space/n/right  - Apply the next token
  b/left         - Step back one token
  e/end          - Jump to the end
  r/home         - Back to the solved state
  q/Esc          - Quit`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	p, err := loadPuzzle(args[0])
	if err != nil {
		return err
	}

	alg := joinAlg(args[1:])
	if alg == "" {
		alg, err = lastScramble(p.Name())
		if err != nil {
			return err
		}
	}

	model := newReplayModel(p, alg)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

// lastScramble returns the notation of the newest saved scramble of a puzzle.
func lastScramble(puzzle string) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	scrambles, err := storage.NewScrambleRepository(db).List(puzzle, 1)
	if err != nil {
		return "", err
	}
	if len(scrambles) == 0 {
		return "", fmt.Errorf("no saved scrambles for %s; pass the moves explicitly", puzzle)
	}
	return scrambles[0].Notation, nil
}

// replayModel steps a puzzle through the tokens of a move string.
type replayModel struct {
	puzzle   *twisty.Puzzle
	tokens   []string
	index    int // number of tokens applied
	turns    []twisty.Turn
	skipped  []string
	quitting bool
}

func newReplayModel(p *twisty.Puzzle, alg string) *replayModel {
	m := &replayModel{
		puzzle: p,
		tokens: strings.Fields(alg),
	}
	m.seek(0)
	return m
}

// seek re-applies the first n tokens to a solved puzzle.
func (m *replayModel) seek(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(m.tokens) {
		n = len(m.tokens)
	}
	m.index = n

	err := m.puzzle.Scramble(strings.Join(m.tokens[:n], " "))
	m.skipped = twisty.SkippedTokens(err)

	m.turns = nil
	if n > 0 {
		m.turns, _ = m.puzzle.Resolve(m.tokens[n-1])
	}
}

func (m *replayModel) Init() tea.Cmd {
	return nil
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case " ", "n", "right":
		m.seek(m.index + 1)
	case "b", "left":
		m.seek(m.index - 1)
	case "e", "end":
		m.seek(len(m.tokens))
	case "r", "home":
		m.seek(0)
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.puzzle.Name() + " replay"))
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("Token %d/%d", m.index, len(m.tokens))))
	b.WriteString("\n")

	// Applied tokens are green, the last one underlined.
	parts := make([]string, len(m.tokens))
	for i, tok := range m.tokens {
		switch {
		case i == m.index-1:
			parts[i] = currentStyle.Render(tok)
		case i < m.index:
			parts[i] = moveStyle.Render(tok)
		default:
			parts[i] = statusStyle.Render(tok)
		}
	}
	b.WriteString(strings.Join(parts, " "))
	b.WriteString("\n\n")

	if m.index > 0 {
		b.WriteString(fmt.Sprintf("Last token: %s -> %s\n", m.tokens[m.index-1], resolvedString(m.turns)))
	}
	if len(m.skipped) > 0 {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Skipped: %s", strings.Join(m.skipped, " "))))
		b.WriteString("\n")
	}

	if m.puzzle.IsSolved() {
		b.WriteString(fmt.Sprintf("State: %s\n", okStyle.Render("SOLVED")))
	} else {
		rot := m.puzzle.ReferenceRotation()
		if rot == "" {
			rot = "-"
		}
		b.WriteString(fmt.Sprintf("Rotation: %s\n", rot))
		b.WriteString(fmt.Sprintf("Cycles: %s\n", m.puzzle.PiecesToCycles("X")))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space/n: next  b: back  e: end  r: reset  q: quit"))
	b.WriteString("\n")

	return b.String()
}

func resolvedString(turns []twisty.Turn) string {
	if len(turns) == 0 {
		return "(no turn)"
	}
	return twisty.FormatTurns(turns)
}
