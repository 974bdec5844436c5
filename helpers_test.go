package twisty

import "testing"

const threeByThreeDefinitions = `U: (UF UL UB UR) (URF UFL ULB UBR)
R: (UR BR DR FR) (URF+1 UBR-1 DRB+1 DFR-1)
F: (UF-1 FR-1 DF-1 FL-1) (URF-1 DFR+1 DLF-1 UFL+1)
D: (DF DR DB DL) (DFR DRB DBL DLF)
L: (UL FL DL BL) (UFL-1 DLF+1 DBL-1 ULB+1)
B: (UB-1 BL-1 DB-1 BR-1) (UBR+1 ULB-1 DBL+1 DRB-1)
u: (UF UL UB UR) (URF UFL ULB UBR) (FR-1 FL-1 BL-1 BR-1) (F L B R)
r: (UR BR DR FR) (URF+1 UBR-1 DRB+1 DFR-1) (UF-1 UB-1 DB-1 DF-1) (U B D F)
f: (UF-1 FR-1 DF-1 FL-1) (URF-1 DFR+1 DLF-1 UFL+1) (UR-1 DR-1 DL-1 UL-1) (U R D L)
d: (DF DR DB DL) (DFR DRB DBL DLF) (FR-1 BR-1 BL-1 FL-1) (F R B L)
l: (UL FL DL BL) (UFL-1 DLF+1 DBL-1 ULB+1) (UF-1 DF-1 DB-1 UB-1) (U F D B)
b: (UB-1 BL-1 DB-1 BR-1) (UBR+1 ULB-1 DBL+1 DRB-1) (UR-1 UL-1 DL-1 DR-1) (U L D R)
Uw: (UF UL UB UR) (URF UFL ULB UBR) (FR-1 FL-1 BL-1 BR-1) (F L B R)
Rw: (UR BR DR FR) (URF+1 UBR-1 DRB+1 DFR-1) (UF-1 UB-1 DB-1 DF-1) (U B D F)
Fw: (UF-1 FR-1 DF-1 FL-1) (URF-1 DFR+1 DLF-1 UFL+1) (UR-1 DR-1 DL-1 UL-1) (U R D L)
Dw: (DF DR DB DL) (DFR DRB DBL DLF) (FR-1 BR-1 BL-1 FL-1) (F R B L)
Lw: (UL FL DL BL) (UFL-1 DLF+1 DBL-1 ULB+1) (UF-1 DF-1 DB-1 UB-1) (U F D B)
Bw: (UB-1 BL-1 DB-1 BR-1) (UBR+1 ULB-1 DBL+1 DRB-1) (UR-1 UL-1 DL-1 DR-1) (U L D R)
M: (UF-1 DF-1 DB-1 UB-1) (U F D B)
S: (UR-1 DR-1 DL-1 UL-1) (U R D L)
E: (FR-1 BR-1 BL-1 FL-1) (F R B L)
x: (UR BR DR FR) (URF+1 UBR-1 DRB+1 DFR-1) (UL BL DL FL) (UFL-1 ULB+1 DBL-1 DLF+1) (UF-1 UB-1 DB-1 DF-1) (U B D F)
y: (UF UL UB UR) (URF UFL ULB UBR) (DF DL DB DR) (DFR DLF DBL DRB) (FR-1 FL-1 BL-1 BR-1) (F L B R)
z: (UF-1 FR-1 DF-1 FL-1) (URF-1 DFR+1 DLF-1 UFL+1) (UB-1 BR-1 DB-1 BL-1) (UBR+1 DRB-1 DBL+1 ULB-1) (UR-1 DR-1 DL-1 UL-1) (U R D L)`

func threeByThree() Descriptor {
	return Descriptor{
		Name:            "3x3",
		Definitions:     threeByThreeDefinitions,
		Reference:       "DBL",
		FirstRotations:  []string{"", "x", "x2", "x'", "z", "z'"},
		SecondRotations: []string{"", "y", "y2", "y'"},
	}
}

// newThreeByThree builds the 3x3 test puzzle and fails the test if the
// construction report is not clean.
func newThreeByThree(t *testing.T, opts ...Option) *Puzzle {
	t.Helper()
	p, err := New(threeByThree(), opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !p.Report().OK() {
		t.Fatalf("unexpected diagnostics: %v", p.Report().Err())
	}
	return p
}
