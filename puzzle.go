package twisty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Descriptor is the per-puzzle configuration the generic engine runs on.
type Descriptor struct {
	Name string

	// Definitions holds one move definition per line.
	Definitions string

	// Reference is the piece that ReferenceRotation brings home with
	// orientation 0. Empty means the puzzle has no reference frame.
	Reference string

	// SolveReference is used by SolveReferenceRotation. Defaults to Reference.
	SolveReference string

	// Candidate whole-puzzle rotations. Every combination "first second" is
	// tried in order; the first one that brings the reference piece home wins.
	FirstRotations  []string
	SecondRotations []string
}

// Report collects the diagnostics found while building a puzzle.
type Report struct {
	Puzzle      string
	Diagnostics []Diagnostic
}

// OK returns true if no problems were found.
func (r Report) OK() bool {
	return len(r.Diagnostics) == 0
}

// Err joins all diagnostics into one error, or returns nil.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		errs[i] = d
	}
	return errors.Join(errs...)
}

// Puzzle is a twisty puzzle driven by declarative move definitions.
// A Puzzle is not safe for concurrent use.
type Puzzle struct {
	desc   Descriptor
	cfg    *config
	moves  map[string]Move
	names  []string
	orders map[string]int
	state  *State
	report Report
}

// New builds a puzzle from a descriptor. Every move's order is derived by
// repeated application; moves that do not return to identity within the
// order bound are reported and left without an order. New only fails when
// there are no moves at all, or in strict mode when the report is not clean.
func New(desc Descriptor, opts ...Option) (*Puzzle, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	p := &Puzzle{
		desc:   desc,
		cfg:    cfg,
		moves:  make(map[string]Move),
		orders: make(map[string]int),
		state:  NewState(nil),
		report: Report{Puzzle: desc.Name},
	}

	text := desc.Definitions
	if len(cfg.extraDefinitions) > 0 {
		text += "\n" + strings.Join(cfg.extraDefinitions, "\n")
	}
	moves, positions, diags := ParseDefinitions(text)
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w for puzzle %q", ErrNoMoves, desc.Name)
	}
	p.report.Diagnostics = append(p.report.Diagnostics, diags...)

	for _, pos := range positions {
		p.state.register(pos)
	}
	for _, m := range moves {
		p.register(m)
	}
	for _, name := range p.names {
		p.checkOrder(name)
	}
	p.checkDescriptor()

	for _, d := range p.report.Diagnostics {
		cfg.logger.WithFields(logrus.Fields{
			"puzzle": desc.Name,
			"move":   d.Move,
			"token":  d.Token,
		}).Warn(d.Err)
	}

	if cfg.strict && !p.report.OK() {
		return nil, fmt.Errorf("puzzle %q: %w", desc.Name, p.report.Err())
	}

	return p, nil
}

// register adds or replaces a move in the table.
func (p *Puzzle) register(m Move) {
	if _, ok := p.moves[m.Name]; !ok {
		p.names = append(p.names, m.Name)
	} else {
		p.cfg.logger.WithField("move", m.Name).Debug("move definition replaced")
	}
	p.moves[m.Name] = m
}

// checkOrder derives a move's order and reports moves that exceed the bound.
func (p *Puzzle) checkOrder(name string) bool {
	n, ok := p.orderOf(p.moves[name])
	if ok {
		p.orders[name] = n
		return true
	}
	delete(p.orders, name)
	p.report.Diagnostics = append(p.report.Diagnostics, p.orderDiagnostic(name))
	return false
}

// orderOf applies the move from identity on a scratch state until identity
// comes back.
func (p *Puzzle) orderOf(m Move) (int, bool) {
	s := p.state.Clone()
	s.Reset()
	for n := 1; n <= p.cfg.maxOrder; n++ {
		s.Apply(m)
		if s.IsIdentity() {
			return n, true
		}
	}
	return 0, false
}

func (p *Puzzle) orderDiagnostic(name string) Diagnostic {
	return Diagnostic{
		Move:  name,
		Token: fmt.Sprintf("order > %d", p.cfg.maxOrder),
		Err:   ErrOrderExceeded,
	}
}

// checkDescriptor verifies that reference pieces exist and that every
// candidate rotation resolves.
func (p *Puzzle) checkDescriptor() {
	for _, ref := range []string{p.desc.Reference, p.desc.SolveReference} {
		if ref == "" {
			continue
		}
		if _, ok := p.state.At(ref); !ok {
			p.report.Diagnostics = append(p.report.Diagnostics, Diagnostic{Token: ref, Err: ErrUnknownPosition})
		}
	}
	for _, list := range [][]string{p.desc.FirstRotations, p.desc.SecondRotations} {
		for _, rot := range list {
			if _, err := p.Resolve(rot); err != nil {
				p.report.Diagnostics = append(p.report.Diagnostics, Diagnostic{Token: rot, Err: ErrBadRotation})
			}
		}
	}
}

// Name returns the puzzle name.
func (p *Puzzle) Name() string {
	return p.desc.Name
}

// Descriptor returns the descriptor the puzzle was built from.
func (p *Puzzle) Descriptor() Descriptor {
	return p.desc
}

// Report returns the construction report.
func (p *Puzzle) Report() Report {
	return p.report
}

// Moves returns the move names in definition order.
func (p *Puzzle) Moves() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Definition returns the parsed move with the given name.
func (p *Puzzle) Definition(name string) (Move, bool) {
	m, ok := p.moves[name]
	return m, ok
}

// Order returns the order of a move. The boolean is false for unknown
// moves and for moves whose order exceeded the bound.
func (p *Puzzle) Order(name string) (int, bool) {
	n, ok := p.orders[name]
	return n, ok
}

// State returns a copy of the current state.
func (p *Puzzle) State() *State {
	return p.state.Clone()
}

// Reset returns the puzzle to the solved state.
func (p *Puzzle) Reset() {
	p.state.Reset()
}

// IsSolved returns true if the puzzle is in the identity state.
func (p *Puzzle) IsSolved() bool {
	return p.state.IsIdentity()
}

// Apply applies one registered move exactly once.
func (p *Puzzle) Apply(name string) error {
	m, ok := p.moves[name]
	if !ok {
		return &TokenError{Token: name, Err: ErrIllegalMove}
	}
	p.state.Apply(m)
	return nil
}

// AddDefinition parses one definition line and registers it, replacing any
// move with the same name. The move's order is derived as in New. A new
// move that exceeds the order bound is registered without an order; a
// replacement that exceeds it is rejected and the existing move kept. Either
// way ErrOrderExceeded is returned and the construction report is left
// untouched. The puzzle state is reset.
func (p *Puzzle) AddDefinition(line string) (Move, error) {
	m, diags, err := ParseDefinition(line)
	if err != nil {
		return Move{}, err
	}
	if len(diags) > 0 {
		errs := make([]error, len(diags))
		for i, d := range diags {
			errs[i] = d
		}
		return Move{}, errors.Join(errs...)
	}

	for _, pos := range m.Pieces() {
		if _, ok := p.state.At(pos); !ok {
			return Move{}, Diagnostic{Move: m.Name, Token: pos, Err: ErrUnknownPosition}
		}
	}

	p.state.Reset()
	n, ok := p.orderOf(m)
	if !ok {
		if _, exists := p.moves[m.Name]; exists {
			return Move{}, p.orderDiagnostic(m.Name)
		}
		p.register(m)
		return m, p.orderDiagnostic(m.Name)
	}

	p.register(m)
	p.orders[m.Name] = n
	return m, nil
}
