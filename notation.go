package twisty

import (
	"errors"
	"regexp"
	"strings"
)

// A notation token: optional layer digit and letters naming the base move,
// then an optional repetition count and an optional inversion mark.
var notationPattern = regexp.MustCompile(`^([0-9]?[A-Za-z]+)([0-9]*)('?)$`)

// token is a parsed notation token before it is checked against a puzzle.
// The count keeps its digits so that counts of any length can be reduced.
type token struct {
	base     string
	count    string
	inverted bool
}

func parseToken(s string) (token, error) {
	m := notationPattern.FindStringSubmatch(s)
	if m == nil {
		return token{}, ErrInvalidNotation
	}
	t := token{base: m[1], count: m[2], inverted: m[3] != ""}
	if t.count == "" {
		t.count = "1"
	}
	return t, nil
}

// reduce returns the count modulo order, one digit at a time.
func (t token) reduce(order int) int {
	k := 0
	for _, d := range t.count {
		k = (k*10 + int(d-'0')) % order
	}
	return k
}

// Resolve turns a move string into primitive applications without touching
// the puzzle state. Tokens are resolved left to right:
//
//   - a token that names a move exactly is applied once;
//   - otherwise the count and inversion mark are split off and the count is
//     reduced modulo the base move's order (R5' on a cube is R3).
//
// Tokens that cannot be resolved are skipped; each one contributes a
// *TokenError to the returned joined error. Tokens that reduce to zero
// repetitions produce no turn.
func (p *Puzzle) Resolve(notation string) ([]Turn, error) {
	var (
		turns []Turn
		errs  []error
	)

	for _, field := range strings.Fields(notation) {
		if _, ok := p.moves[field]; ok {
			turns = append(turns, Turn{Move: field, Count: 1})
			continue
		}

		tok, err := parseToken(field)
		if err != nil {
			errs = append(errs, &TokenError{Token: field, Err: err})
			continue
		}
		if _, ok := p.moves[tok.base]; !ok {
			errs = append(errs, &TokenError{Token: field, Err: ErrIllegalMove})
			continue
		}
		order, ok := p.orders[tok.base]
		if !ok {
			errs = append(errs, &TokenError{Token: field, Err: ErrMalformedMove})
			continue
		}

		k := tok.reduce(order)
		if tok.inverted {
			k = -k
		}
		if k = mod(k, order); k > 0 {
			turns = append(turns, Turn{Move: tok.base, Count: k})
		}
	}

	for _, err := range errs {
		p.cfg.logger.WithField("puzzle", p.desc.Name).Debug(err)
	}

	return turns, errors.Join(errs...)
}

// Move resolves a move string and applies it to the current state.
// Unresolvable tokens are skipped and reported in the returned error; all
// other tokens are still applied.
func (p *Puzzle) Move(notation string) error {
	turns, err := p.Resolve(notation)
	p.applyTurns(p.state, turns)
	return err
}

// Scramble resets the puzzle and then applies the move string, so the
// result does not depend on earlier moves.
func (p *Puzzle) Scramble(notation string) error {
	p.state.Reset()
	return p.Move(notation)
}

func (p *Puzzle) applyTurns(s *State, turns []Turn) {
	for _, t := range turns {
		m := p.moves[t.Move]
		for i := 0; i < t.Count; i++ {
			s.Apply(m)
		}
	}
}

// Normalize rewrites every token of a move string to the shortest
// equivalent form: R3 on a cube becomes R', R5 becomes R, R4 disappears.
// Unresolvable tokens are kept unchanged and reported in the error.
func (p *Puzzle) Normalize(notation string) (string, error) {
	var (
		out  []string
		errs []error
	)

	for _, field := range strings.Fields(notation) {
		turns, err := p.Resolve(field)
		if err != nil {
			out = append(out, field)
			errs = append(errs, err)
			continue
		}
		if len(turns) == 0 {
			continue
		}
		t := turns[0]
		order, ok := p.orders[t.Move]
		if ok && t.Count > order/2 {
			out = append(out, Turn{Move: t.Move, Count: order - t.Count}.Notation()+"'")
		} else {
			out = append(out, t.Notation())
		}
	}

	return strings.Join(out, " "), errors.Join(errs...)
}

// InvertNotation returns the inverse of a move string: tokens in reverse
// order, each with its inversion mark toggled.
func InvertNotation(notation string) string {
	fields := strings.Fields(notation)
	out := make([]string, 0, len(fields))
	for i := len(fields) - 1; i >= 0; i-- {
		f := fields[i]
		if strings.HasSuffix(f, "'") {
			out = append(out, strings.TrimSuffix(f, "'"))
		} else {
			out = append(out, f+"'")
		}
	}
	return strings.Join(out, " ")
}

// InverseScramble returns the move string that sets up the case solved by
// alg, prefixed with the rotation that puts the solve reference piece home.
// The puzzle is left scrambled with the returned string.
func (p *Puzzle) InverseScramble(alg string) (string, error) {
	inverse := InvertNotation(alg)

	err := p.Scramble(alg)
	result := inverse
	if rot := p.SolveReferenceRotation(); rot != "" {
		result = strings.TrimSpace(InvertNotation(rot) + " " + inverse)
	}

	// The scramble error already names every skipped token.
	_ = p.Scramble(result)
	return result, err
}
