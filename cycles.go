package twisty

// PiecesToCycles describes the current state as a move definition named
// name. Parsing the result and applying it once to the identity state
// reproduces the current state. Positions holding their own piece with
// orientation 0 are left out.
func (p *Puzzle) PiecesToCycles(name string) string {
	return StateToMove(name, p.state).String()
}

// StateToMove decomposes a state into disjoint cycles.
//
// Starting from each unvisited position, the walk follows the piece found
// there back to that piece's home position until it closes. The collected
// placements are emitted in reverse walk order, each with its orientation as
// the delta, which is the move that carries identity to the state.
func StateToMove(name string, s *State) Move {
	move := Move{Name: name}
	visited := make(map[string]bool, s.Len())

	for _, start := range s.positions {
		if visited[start] {
			continue
		}
		visited[start] = true

		cur := s.slots[start]
		walk := []Placement{cur}
		for cur.Piece != start {
			visited[cur.Piece] = true
			next, ok := s.slots[cur.Piece]
			if !ok {
				break
			}
			cur = next
			walk = append(walk, cur)
		}

		if len(walk) == 1 && walk[0].Orientation == 0 {
			continue
		}

		cycle := make(Cycle, len(walk))
		for i, pl := range walk {
			cycle[len(walk)-1-i] = Step{Piece: pl.Piece, Delta: pl.Orientation}
		}
		move.Cycles = append(move.Cycles, cycle)
	}

	return move
}

// Derive scrambles the puzzle with notation and returns the resulting state
// as a move definition. This is how slice moves and rotations are built
// from existing moves, e.g. Derive("M", "r R'").
func (p *Puzzle) Derive(name, notation string) (string, error) {
	err := p.Scramble(notation)
	return p.PiecesToCycles(name), err
}
