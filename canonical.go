package twisty

import "strings"

// ReferenceRotation returns the whole-puzzle rotation that brings the
// descriptor's reference piece to its home position with orientation 0.
//
// Candidates are tried in descriptor order on copies of the current state,
// so the result is deterministic. An empty string means either that no
// rotation is needed or that no candidate matched; callers must accept both.
func (p *Puzzle) ReferenceRotation() string {
	return p.referenceRotation(p.desc.Reference)
}

// SolveReferenceRotation is ReferenceRotation using the solve reference
// piece, for re-orienting a solution rather than a scramble.
func (p *Puzzle) SolveReferenceRotation() string {
	if p.desc.SolveReference != "" {
		return p.referenceRotation(p.desc.SolveReference)
	}
	return p.referenceRotation(p.desc.Reference)
}

func (p *Puzzle) referenceRotation(piece string) string {
	if piece == "" {
		return ""
	}
	home := Placement{Piece: piece}

	for _, candidate := range p.rotationCandidates() {
		turns, err := p.Resolve(candidate)
		if err != nil {
			continue
		}
		trial := p.state.Clone()
		p.applyTurns(trial, turns)
		if got, ok := trial.At(piece); ok && got == home {
			return candidate
		}
	}
	return ""
}

// rotationCandidates lists every "first second" combination in search order.
func (p *Puzzle) rotationCandidates() []string {
	first := p.desc.FirstRotations
	if len(first) == 0 {
		first = []string{""}
	}
	second := p.desc.SecondRotations
	if len(second) == 0 {
		second = []string{""}
	}

	out := make([]string, 0, len(first)*len(second))
	for _, f := range first {
		for _, s := range second {
			out = append(out, strings.TrimSpace(strings.TrimSpace(f)+" "+strings.TrimSpace(s)))
		}
	}
	return out
}
