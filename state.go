package twisty

import (
	"sort"
	"strings"
)

// Placement is what occupies a position: a piece and its orientation.
type Placement struct {
	Piece       string
	Orientation int
}

// Slot is the exported form of one position of a state.
type Slot struct {
	Position    string `json:"position"`
	Piece       string `json:"piece"`
	Orientation int    `json:"orientation"`
}

// SymmetryOrder returns the number of orientations a piece can take, which
// is the number of letters in its label. Numeric suffixes only disambiguate
// otherwise identical pieces.
func SymmetryOrder(label string) int {
	n := 0
	for i := 0; i < len(label); i++ {
		c := label[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// State maps every position of a puzzle to its current placement.
// Positions keep the order in which they were first registered.
type State struct {
	positions []string
	slots     map[string]Placement
}

// NewState creates an identity state over the given positions.
func NewState(positions []string) *State {
	s := &State{slots: make(map[string]Placement, len(positions))}
	for _, p := range positions {
		s.register(p)
	}
	return s
}

func (s *State) register(position string) {
	if _, ok := s.slots[position]; ok {
		return
	}
	s.positions = append(s.positions, position)
	s.slots[position] = Placement{Piece: position}
}

// Positions returns the position labels in registration order.
func (s *State) Positions() []string {
	out := make([]string, len(s.positions))
	copy(out, s.positions)
	return out
}

// Len returns the number of positions.
func (s *State) Len() int {
	return len(s.positions)
}

// At returns the placement at a position.
func (s *State) At(position string) (Placement, bool) {
	p, ok := s.slots[position]
	return p, ok
}

// Apply applies every cycle of m. Positions not named by m are unchanged.
func (s *State) Apply(m Move) {
	for _, c := range m.Cycles {
		n := len(c)
		if n == 0 {
			continue
		}
		moved := make([]Placement, n)
		for i, step := range c {
			p := s.slots[step.Piece]
			p.Orientation = mod(p.Orientation+step.Delta, SymmetryOrder(p.Piece))
			moved[i] = p
		}
		for i := range c {
			s.slots[c[(i+1)%n].Piece] = moved[i]
		}
	}
}

// IsIdentity returns true if every position holds its own piece with
// orientation 0.
func (s *State) IsIdentity() bool {
	for _, pos := range s.positions {
		p := s.slots[pos]
		if p.Piece != pos || p.Orientation != 0 {
			return false
		}
	}
	return true
}

// Reset returns the state to identity.
func (s *State) Reset() {
	for _, pos := range s.positions {
		s.slots[pos] = Placement{Piece: pos}
	}
}

// Clone creates a deep copy of the state.
func (s *State) Clone() *State {
	clone := &State{
		positions: make([]string, len(s.positions)),
		slots:     make(map[string]Placement, len(s.slots)),
	}
	copy(clone.positions, s.positions)
	for k, v := range s.slots {
		clone.slots[k] = v
	}
	return clone
}

// Equal reports whether both states hold the same placements.
func (s *State) Equal(other *State) bool {
	if other == nil || len(s.slots) != len(other.slots) {
		return false
	}
	for k, v := range s.slots {
		if ov, ok := other.slots[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Slots returns the state as a list of slots in position order.
func (s *State) Slots() []Slot {
	out := make([]Slot, len(s.positions))
	for i, pos := range s.positions {
		p := s.slots[pos]
		out[i] = Slot{Position: pos, Piece: p.Piece, Orientation: p.Orientation}
	}
	return out
}

// Facelets maps every sticker slot to the face letter showing there.
//
// A position with label ABC has one sticker per character; the sticker on
// face A is named A followed by the remaining characters sorted (ABC), the
// one on face B is BAC, and so on. Character i of the occupying piece shows
// on sticker (i + orientation) mod len(piece). Digit characters carry no
// color and are skipped.
func (s *State) Facelets() map[string]string {
	out := make(map[string]string)
	for _, pos := range s.positions {
		p := s.slots[pos]
		stickers := stickerNames(pos)
		for i := 0; i < len(p.Piece); i++ {
			c := p.Piece[i]
			if c >= '0' && c <= '9' {
				continue
			}
			idx := (i + p.Orientation) % len(p.Piece)
			if idx >= len(stickers) {
				continue
			}
			out[stickers[idx]] = string(c)
		}
	}
	return out
}

// stickerNames returns the sticker names of a position, one per character.
func stickerNames(position string) []string {
	names := make([]string, 0, len(position))
	for i := 0; i < len(position); i++ {
		var rest []string
		for j := 0; j < len(position); j++ {
			if position[j] != position[i] {
				rest = append(rest, string(position[j]))
			}
		}
		sort.Strings(rest)
		names = append(names, string(position[i])+strings.Join(rest, ""))
	}
	return names
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
