// Package twisty models the state of twisty puzzles (cubes from 2x2 to 5x5,
// Skewb, Pyraminx, Megaminx, Octaminx) with one generic engine driven by
// declarative move definitions.
//
// # Move Definitions
//
// Each puzzle is described by text with one move per line. A move is a list
// of disjoint cycles of piece labels; a label may carry a signed orientation
// delta:
//
//	U: (UF UL UB UR) (URF UFL ULB UBR)
//	R: (UR BR DR FR) (URF+1 UBR-1 DRB+1 DFR-1)
//
// The number of letters in a label is the number of orientations the piece
// has: URF is a corner with 3, UF an edge with 2, U a center with 1. Digits
// only tell otherwise identical pieces apart.
//
// # Quick Start
//
//	p, err := twisty.New(twisty.Descriptor{
//	    Name:        "3x3",
//	    Definitions: defs,
//	    Reference:   "DBL",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Tokens that cannot be resolved are skipped and reported.
//	if err := p.Scramble("R U R' U' 3Rw2'"); err != nil {
//	    fmt.Println("skipped:", twisty.SkippedTokens(err))
//	}
//
//	fmt.Println("Solved:", p.IsSolved())
//	fmt.Println("Rotation:", p.ReferenceRotation())
//
// # Notation
//
// A token is an optional layer digit and letters naming a move, then an
// optional count and an optional inversion mark: R, R2, R', U200, 3Rw2'.
// Counts are reduced modulo the move's order, which New derives by applying
// every move until the puzzle is solved again.
//
// # Deriving Moves
//
// Any reachable state can be written back as a move definition:
//
//	def, _ := p.Derive("M", "r R'")
//	// M: (UF+1 UB+1 DB+1 DF+1) (F U B D)
//	p.AddDefinition(def)
package twisty
