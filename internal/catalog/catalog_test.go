package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/twisty"
)

func builtin(t *testing.T) *Catalog {
	t.Helper()
	c, err := Builtin()
	require.NoError(t, err)
	return c
}

func TestBuiltinNames(t *testing.T) {
	c := builtin(t)
	assert.Equal(t, []string{
		"2x2", "3x3", "5x5", "Megaminx", "Octaminx", "OctaminxRotations", "Pyraminx", "Skewb",
	}, c.Names())

	_, ok := c.Descriptor("SKEWB")
	assert.True(t, ok, "lookup should ignore case")
	_, ok = c.Descriptor("4x4")
	assert.False(t, ok)
}

func TestBuiltinPuzzlesAreClean(t *testing.T) {
	c := builtin(t)

	tests := []struct {
		name      string
		moves     int
		positions int
	}{
		{"2x2", 9, 8},
		{"3x3", 24, 26},
		{"5x5", 27, 98},
		{"Skewb", 15, 14},
		{"Pyraminx", 18, 14},
		{"Megaminx", 16, 62},
		{"Octaminx", 39, 50},
		{"OctaminxRotations", 5, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := c.Puzzle(tt.name, twisty.WithStrict(true))
			require.NoError(t, err)
			assert.True(t, p.Report().OK(), "report: %v", p.Report().Err())
			assert.Len(t, p.Moves(), tt.moves)
			assert.Equal(t, tt.positions, p.State().Len())
			assert.True(t, p.IsSolved())
		})
	}
}

func TestBuiltinMoveOrders(t *testing.T) {
	c := builtin(t)

	uniform := map[string]int{"2x2": 4, "3x3": 4, "5x5": 4, "Pyraminx": 3, "Megaminx": 5}
	for name, want := range uniform {
		p, err := c.Puzzle(name)
		require.NoError(t, err)
		for _, m := range p.Moves() {
			n, ok := p.Order(m)
			assert.True(t, ok, "%s %s has no order", name, m)
			assert.Equal(t, want, n, "%s order(%s)", name, m)
		}
	}

	skewb, err := c.Puzzle("skewb")
	require.NoError(t, err)
	for m, want := range map[string]int{"R": 3, "f": 3, "S": 6, "h": 6, "x": 4, "z": 4} {
		n, _ := skewb.Order(m)
		assert.Equal(t, want, n, "skewb order(%s)", m)
	}

	octa, err := c.Puzzle("octaminx")
	require.NoError(t, err)
	for _, m := range octa.Moves() {
		want := 3
		if m == "t" {
			want = 4
		}
		n, _ := octa.Order(m)
		assert.Equal(t, want, n, "octaminx order(%s)", m)
	}
}

func TestReferenceRotations(t *testing.T) {
	c := builtin(t)

	tests := []struct {
		puzzle   string
		scramble string
		want     string
	}{
		{"2x2", "x", "x'"},
		{"2x2", "y2", "y2"},
		{"2x2", "z'", "z"},
		{"2x2", "x y", "z' y'"},
		{"2x2", "R U", ""},
		{"Skewb", "x", "x'"},
		{"Skewb", "R L", "z' y'"},
		{"Skewb", "z y2", "z y2"},
		{"Pyraminx", "x", "x'"},
		{"Pyraminx", "z", "z2"},
		{"Pyraminx", "xl z2", "x' z"},
		{"Pyraminx", "U R", "x'"},
		{"Megaminx", "x", "x'"},
		{"Megaminx", "z2", "z2'"},
		{"Megaminx", "y z", "x' z'"},
		{"Octaminx", "t", "t'"},
		{"Octaminx", "xr", "xr'"},
		{"Octaminx", "y", "y'"},
		{"Octaminx", "R U", ""},
	}
	for _, tt := range tests {
		p, err := c.Puzzle(tt.puzzle)
		require.NoError(t, err)
		require.NoError(t, p.Scramble(tt.scramble))
		assert.Equal(t, tt.want, p.ReferenceRotation(), "%s after %q", tt.puzzle, tt.scramble)
	}
}

func TestBuiltinCyclesRoundTrip(t *testing.T) {
	c := builtin(t)
	for _, name := range c.Names() {
		t.Run(name, func(t *testing.T) {
			p, err := c.Puzzle(name)
			require.NoError(t, err)

			moves := p.Moves()
			scrambles := []string{
				strings.Join(moves, " "),
				twisty.InvertNotation(strings.Join(moves[:len(moves)/2], " ")),
			}
			for i, scramble := range scrambles {
				require.NoError(t, p.Scramble(scramble))
				target := p.State()

				line := p.PiecesToCycles("Qrt" + string(rune('a'+i)))
				_, err := p.AddDefinition(line)
				if err != nil && !errors.Is(err, twisty.ErrOrderExceeded) {
					t.Fatalf("AddDefinition(%q): %v", line, err)
				}
				require.NoError(t, p.Apply("Qrt"+string(rune('a'+i))))
				assert.True(t, p.State().Equal(target), "%s: cycles of %q do not reproduce it", name, scramble)
			}
		})
	}
}

func TestBuiltinReferenceRotationIsIdempotent(t *testing.T) {
	c := builtin(t)
	for _, name := range c.Names() {
		p, err := c.Puzzle(name)
		require.NoError(t, err)

		moves := p.Moves()
		for i := range moves {
			scramble := strings.Join(moves[i:], " ")
			require.NoError(t, p.Scramble(scramble))

			rot := p.ReferenceRotation()
			require.NoError(t, p.Move(rot))
			assert.Equal(t, "", p.ReferenceRotation(), "%s after %q then %q", name, scramble, rot)
		}
	}
}

func TestSkewbSolveReference(t *testing.T) {
	p, err := builtin(t).Puzzle("skewb")
	require.NoError(t, err)

	require.NoError(t, p.Scramble("R L"))
	assert.Equal(t, "", p.SolveReferenceRotation())

	require.NoError(t, p.Scramble("x"))
	assert.Equal(t, "x'", p.SolveReferenceRotation())

	got, err := p.InverseScramble("R L")
	require.NoError(t, err)
	assert.Equal(t, "L' R'", got)

	got, err = p.InverseScramble("z y2")
	require.NoError(t, err)
	assert.Equal(t, "y2' z' y2' z'", got)
}

func TestTwoByTwoInverseScramble(t *testing.T) {
	p, err := builtin(t).Puzzle("2x2")
	require.NoError(t, err)

	got, err := p.InverseScramble("R2 U x")
	require.NoError(t, err)
	assert.Equal(t, "x x' U' R2'", got)
}

func TestMegaminxNormalize(t *testing.T) {
	p, err := builtin(t).Puzzle("megaminx")
	require.NoError(t, err)

	got, err := p.Normalize("R3 U4 F5 D7'")
	require.NoError(t, err)
	assert.Equal(t, "R2' U' D2'", got)
}

func TestOctaminxFacelets(t *testing.T) {
	p, err := builtin(t).Puzzle("octaminx")
	require.NoError(t, err)

	f := p.State().Facelets()
	assert.Len(t, f, 80)
	assert.Equal(t, "W", f["W1"])
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "floppy.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`version: 1
name: Floppy
reference: UFR
rotations:
  first: ["", "x"]
definitions: |
  R: (UFR+1) (UR DR)
  x: (UFR+1 DFR+1) (UR DR)
`), 0644))

	c := builtin(t)
	require.NoError(t, c.LoadFile(file))
	assert.Contains(t, c.Names(), "Floppy")

	p, err := c.Puzzle("floppy")
	require.NoError(t, err)
	assert.True(t, p.Report().OK(), "report: %v", p.Report().Err())

	n, ok := p.Order("R")
	assert.True(t, ok)
	assert.Equal(t, 6, n)
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"version":     "version: 2\nname: X\ndefinitions: \"R: (A B)\"\n",
		"name":        "version: 1\ndefinitions: \"R: (A B)\"\n",
		"definitions": "version: 1\nname: X\n",
		"yaml":        "version: [1\n",
	}
	for name, body := range tests {
		_, err := Parse([]byte(body))
		assert.Error(t, err, name)
	}
}

func TestUnknownPuzzle(t *testing.T) {
	_, err := builtin(t).Puzzle("square-1")
	assert.Error(t, err)
}
