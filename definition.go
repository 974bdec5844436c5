package twisty

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// A piece token is a label, optionally followed by a signed one-digit
	// orientation delta: UFL, UFL+1, UF1-1.
	pieceTokenPattern = regexp.MustCompile(`^([A-Za-z]+[0-9]*)([+-][0-9])?$`)

	cyclePattern = regexp.MustCompile(`\(([^()]*)\)`)

	// Move names must be reachable from notation: optional layer digit, letters.
	moveNamePattern = regexp.MustCompile(`^[0-9]?[A-Za-z]+$`)
)

// ParseDefinition reads one definition line of the form
//
//	Name: (A B+1 C-1) (D E)
//
// Tokens that do not fit the piece grammar are kept as whole labels with
// delta 0 and reported as diagnostics. Text outside the parenthesized
// cycles is ignored and reported. The returned error is non-nil only
// when the line has no name header.
func ParseDefinition(line string) (Move, []Diagnostic, error) {
	head, body, ok := strings.Cut(line, ":")
	name := strings.TrimSpace(head)
	if !ok || name == "" || strings.ContainsAny(name, " \t(") {
		return Move{}, nil, Diagnostic{Token: strings.TrimSpace(line), Err: ErrMissingName}
	}

	var diags []Diagnostic
	if !moveNamePattern.MatchString(name) {
		diags = append(diags, Diagnostic{Move: name, Token: name, Err: ErrInvalidNotation})
	}

	move := Move{Name: name}
	seen := make(map[string]bool)
	for _, group := range cyclePattern.FindAllStringSubmatch(body, -1) {
		fields := strings.Fields(group[1])
		if len(fields) == 0 {
			continue
		}
		cycle := make(Cycle, 0, len(fields))
		for _, tok := range fields {
			step, ok := parseStep(tok)
			if !ok {
				diags = append(diags, Diagnostic{Move: name, Token: tok, Err: ErrAmbiguousToken})
			}
			if seen[step.Piece] {
				diags = append(diags, Diagnostic{Move: name, Token: tok, Err: ErrRepeatedPiece})
			}
			seen[step.Piece] = true
			cycle = append(cycle, step)
		}
		move.Cycles = append(move.Cycles, cycle)
	}

	// Bare pieces, text between groups and unclosed parentheses.
	if rest := strings.Fields(cyclePattern.ReplaceAllString(body, " ")); len(rest) > 0 {
		diags = append(diags, Diagnostic{Move: name, Token: strings.Join(rest, " "), Err: ErrStrayText})
	}

	return move, diags, nil
}

// parseStep splits a piece token into label and delta. The boolean is false
// when the token does not match the grammar; the whole token is then used
// as the label.
func parseStep(tok string) (Step, bool) {
	m := pieceTokenPattern.FindStringSubmatch(tok)
	if m == nil {
		return Step{Piece: tok}, false
	}
	step := Step{Piece: m[1]}
	if m[2] != "" {
		// Pattern guarantees a sign and one digit.
		step.Delta, _ = strconv.Atoi(m[2])
	}
	return step, true
}

// ParseDefinitions reads a multi-line definition text. It returns the moves
// in order, every position label in order of first appearance, and all
// diagnostics. Blank lines and lines starting with # are ignored.
func ParseDefinitions(text string) ([]Move, []string, []Diagnostic) {
	var (
		moves     []Move
		positions []string
		diags     []Diagnostic
	)
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		move, lineDiags, err := ParseDefinition(trimmed)
		diags = append(diags, lineDiags...)
		if err != nil {
			if d, ok := err.(Diagnostic); ok {
				diags = append(diags, d)
			}
			continue
		}

		for _, p := range move.Pieces() {
			if !seen[p] {
				seen[p] = true
				positions = append(positions, p)
			}
		}
		moves = append(moves, move)
	}

	return moves, positions, diags
}
