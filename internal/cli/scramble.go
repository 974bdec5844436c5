package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/storage"
)

var (
	scrambleFormat string
	scrambleSave   bool
	scrambleAll    bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble <puzzle> <moves...>",
	Short: "Apply a move string to a solved puzzle",
	Long: `Reset the puzzle, apply the move string and describe the result: the
normalized notation, the rotation back to the reference frame and the state
as disjoint cycles.

Tokens that cannot be resolved are skipped with a warning; the rest of the
move string is still applied.

Examples:
  twisty scramble 3x3 "R U R' U'"
  twisty scramble skewb R L --format json
  twisty scramble megaminx R3 U --save`,
	Args: cobra.MinimumNArgs(2),
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().StringVarP(&scrambleFormat, "format", "f", "table", "Output format (table, json)")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Record the scramble in the history database")
	scrambleCmd.Flags().BoolVar(&scrambleAll, "all", false, "Show every position, not only the moved ones")
}

// scrambleResult is the JSON form of a scramble.
type scrambleResult struct {
	ID                string        `json:"id,omitempty"`
	Puzzle            string        `json:"puzzle"`
	Notation          string        `json:"notation"`
	Normalized        string        `json:"normalized"`
	ReferenceRotation string        `json:"reference_rotation"`
	Cycles            string        `json:"cycles"`
	Solved            bool          `json:"solved"`
	Skipped           []string      `json:"skipped,omitempty"`
	State             []twisty.Slot `json:"state"`
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleFormat != "table" && scrambleFormat != "json" {
		return fmt.Errorf("unknown format %q (use table or json)", scrambleFormat)
	}

	p, err := loadPuzzle(args[0])
	if err != nil {
		return err
	}
	alg := joinAlg(args[1:])

	res := scrambleResult{Puzzle: p.Name(), Notation: alg}
	res.Normalized, _ = p.Normalize(alg)
	res.Skipped = warnSkipped(p.Scramble(alg))
	res.ReferenceRotation = p.ReferenceRotation()
	res.Cycles = p.PiecesToCycles("X")
	res.Solved = p.IsSolved()
	res.State = p.State().Slots()

	if scrambleSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		res.ID, err = storage.NewScrambleRepository(db).Create(storage.ScrambleInput{
			Puzzle:            res.Puzzle,
			Notation:          res.Notation,
			Normalized:        res.Normalized,
			ReferenceRotation: res.ReferenceRotation,
			Cycles:            res.Cycles,
			State:             res.State,
			Skipped:           res.Skipped,
		})
		if err != nil {
			return err
		}
		log.WithField("id", res.ID).Info("scramble saved")
	}

	out := cmd.OutOrStdout()
	if scrambleFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printScramble(out, res, scrambleAll)
	return nil
}

func printScramble(out io.Writer, res scrambleResult, all bool) {
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s: %s", res.Puzzle, res.Notation)))
	if res.ID != "" {
		fmt.Fprintf(out, "ID:         %s\n", res.ID)
	}
	fmt.Fprintf(out, "Normalized: %s\n", moveStyle.Render(res.Normalized))
	if len(res.Skipped) > 0 {
		fmt.Fprintf(out, "Skipped:    %s\n", errorStyle.Render(fmt.Sprint(res.Skipped)))
	}

	rot := res.ReferenceRotation
	if rot == "" {
		rot = "-"
	}
	fmt.Fprintf(out, "Rotation:   %s\n", rot)
	if res.Solved {
		fmt.Fprintf(out, "State:      %s\n", okStyle.Render("SOLVED"))
		return
	}
	fmt.Fprintf(out, "Cycles:     %s\n", res.Cycles)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%-10s  %-10s  %s\n", "Position", "Piece", "Orientation")
	fmt.Fprintln(out, "----------  ----------  -----------")
	for _, s := range res.State {
		if !all && s.Piece == s.Position && s.Orientation == 0 {
			continue
		}
		fmt.Fprintf(out, "%-10s  %-10s  %d\n", s.Position, s.Piece, s.Orientation)
	}
}
