package twisty

import "testing"

func TestReferenceRotation(t *testing.T) {
	p := newThreeByThree(t)

	tests := map[string]string{
		"":      "",
		"R":     "",
		"R U":   "",
		"F":     "",
		"x y":   "z' y'",
		"y2":    "y2",
		"x":     "x'",
		"z'":    "z",
		"x y R": "z' y'",
	}
	for scramble, want := range tests {
		p.Scramble(scramble)
		before := p.State()

		if got := p.ReferenceRotation(); got != want {
			t.Errorf("ReferenceRotation after %q = %q, want %q", scramble, got, want)
		}
		if !p.State().Equal(before) {
			t.Errorf("ReferenceRotation after %q changed the state", scramble)
		}
	}
}

func TestReferenceRotationHomesPiece(t *testing.T) {
	p := newThreeByThree(t)
	for _, scramble := range []string{"x y", "z2 y'", "x' z", "R U x2 F'"} {
		p.Scramble(scramble)
		p.Move(p.ReferenceRotation())

		got, _ := p.State().At("DBL")
		if got != (Placement{Piece: "DBL"}) {
			t.Errorf("after %q DBL holds %+v", scramble, got)
		}
		if rot := p.ReferenceRotation(); rot != "" {
			t.Errorf("second ReferenceRotation after %q = %q, want empty", scramble, rot)
		}
	}
}

func TestReferenceRotationWithoutReference(t *testing.T) {
	desc := threeByThree()
	desc.Reference = ""
	p, err := New(desc)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	p.Scramble("x")
	if got := p.ReferenceRotation(); got != "" {
		t.Errorf("ReferenceRotation = %q, want empty", got)
	}
}

func TestSolveReferenceFallsBack(t *testing.T) {
	p := newThreeByThree(t)
	p.Scramble("x y")
	if got := p.SolveReferenceRotation(); got != "z' y'" {
		t.Errorf("SolveReferenceRotation = %q, want %q", got, "z' y'")
	}
}
