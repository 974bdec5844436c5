package twisty

import (
	"strconv"
	"strings"
)

// Step is one entry of a cycle: the piece at a position and the orientation
// it gains when it moves to the next position of the cycle.
type Step struct {
	Piece string
	Delta int
}

// String renders the step as a definition token, e.g. UFL+1.
func (s Step) String() string {
	switch {
	case s.Delta > 0:
		return s.Piece + "+" + strconv.Itoa(s.Delta)
	case s.Delta < 0:
		return s.Piece + strconv.Itoa(s.Delta)
	default:
		return s.Piece
	}
}

// Cycle is an ordered list of steps. Applying it moves the occupant of each
// position to the position of the following step, wrapping at the end.
type Cycle []Step

// String renders the cycle in parentheses, e.g. (URF+1 UBR-1 DRB+1 DFR-1).
func (c Cycle) String() string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = s.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Move is a named list of disjoint cycles.
type Move struct {
	Name   string
	Cycles []Cycle
}

// String renders the move as one definition line, e.g.
//
//	R: (UR BR DR FR) (URF+1 UBR-1 DRB+1 DFR-1)
func (m Move) String() string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteString(":")
	for _, c := range m.Cycles {
		b.WriteString(" ")
		b.WriteString(c.String())
	}
	return b.String()
}

// Pieces returns every piece label the move touches, in definition order.
func (m Move) Pieces() []string {
	var pieces []string
	for _, c := range m.Cycles {
		for _, s := range c {
			pieces = append(pieces, s.Piece)
		}
	}
	return pieces
}

// Turn is one resolved primitive application: Count repetitions of Move.
type Turn struct {
	Move  string
	Count int
}

// Notation returns the turn in move notation: R, R2, ...
func (t Turn) Notation() string {
	if t.Count == 1 {
		return t.Move
	}
	return t.Move + strconv.Itoa(t.Count)
}

// String returns the notation string (alias for Notation).
func (t Turn) String() string {
	return t.Notation()
}

// FormatTurns formats a slice of turns as a space-separated notation string.
func FormatTurns(turns []Turn) string {
	if len(turns) == 0 {
		return ""
	}

	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = t.Notation()
	}

	return strings.Join(parts, " ")
}
