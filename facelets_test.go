package twisty

import "testing"

func TestFaceletsSolved(t *testing.T) {
	p := newThreeByThree(t)
	f := p.State().Facelets()
	if len(f) != 54 {
		t.Fatalf("got %d stickers, want 54", len(f))
	}
	for name, color := range f {
		if color != name[:1] {
			t.Errorf("sticker %s shows %s on a solved cube", name, color)
		}
	}
}

func TestFaceletsAfterR(t *testing.T) {
	p := newThreeByThree(t)
	p.Move("R")
	f := p.State().Facelets()

	want := map[string]string{
		"UFR": "F", "FRU": "D", "RFU": "R",
		"UR": "F", "RU": "R",
		"FR": "D", "RF": "R",
		"DFR": "B", "FDR": "D", "RDF": "R",
		"UBR": "F", "BRU": "U", "RBU": "R",
	}
	for sticker, color := range want {
		if got := f[sticker]; got != color {
			t.Errorf("sticker %s = %q, want %q", sticker, got, color)
		}
	}
}

func TestFaceletsAfterF(t *testing.T) {
	p := newThreeByThree(t)
	p.Move("F")
	f := p.State().Facelets()

	want := map[string]string{"UF": "L", "FU": "F", "FRU": "F", "RFU": "U"}
	for sticker, color := range want {
		if got := f[sticker]; got != color {
			t.Errorf("sticker %s = %q, want %q", sticker, got, color)
		}
	}
}

func TestSlots(t *testing.T) {
	p := newThreeByThree(t)
	p.Move("R")
	slots := p.State().Slots()
	if len(slots) != 26 {
		t.Fatalf("got %d slots, want 26", len(slots))
	}
	for _, s := range slots {
		if s.Position == "URF" && (s.Piece != "DFR" || s.Orientation != 2) {
			t.Errorf("URF slot = %+v, want DFR with orientation 2", s)
		}
		if s.Position == "UR" && (s.Piece != "FR" || s.Orientation != 0) {
			t.Errorf("UR slot = %+v, want FR with orientation 0", s)
		}
	}
}
