// Package catalog holds the puzzle descriptors shipped with twisty and loads
// user-defined ones from YAML files.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/twisty"
)

//go:embed puzzles/*.yaml
var builtinFS embed.FS

// PuzzleFile is the on-disk form of a descriptor.
type PuzzleFile struct {
	Version        int    `yaml:"version"`
	Name           string `yaml:"name"`
	Reference      string `yaml:"reference"`
	SolveReference string `yaml:"solve_reference"`
	Rotations      struct {
		First  []string `yaml:"first"`
		Second []string `yaml:"second"`
	} `yaml:"rotations"`
	Definitions string `yaml:"definitions"`
}

// Descriptor converts the file into an engine descriptor.
func (f *PuzzleFile) Descriptor() twisty.Descriptor {
	return twisty.Descriptor{
		Name:            f.Name,
		Definitions:     f.Definitions,
		Reference:       f.Reference,
		SolveReference:  f.SolveReference,
		FirstRotations:  f.Rotations.First,
		SecondRotations: f.Rotations.Second,
	}
}

// Catalog is a set of puzzle descriptors keyed by lower-cased name.
type Catalog struct {
	descriptors map[string]twisty.Descriptor
}

// Builtin returns a catalog containing every embedded puzzle.
func Builtin() (*Catalog, error) {
	c := &Catalog{descriptors: make(map[string]twisty.Descriptor)}

	entries, err := fs.ReadDir(builtinFS, "puzzles")
	if err != nil {
		return nil, fmt.Errorf("failed to read builtin puzzles: %w", err)
	}
	for _, e := range entries {
		b, err := builtinFS.ReadFile(path.Join("puzzles", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", e.Name(), err)
		}
		if err := c.add(e.Name(), b); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// LoadFile adds the puzzle described by a YAML file. A puzzle with the same
// name as an existing one replaces it.
func (c *Catalog) LoadFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read puzzle file: %w", err)
	}
	return c.add(filename, b)
}

func (c *Catalog) add(source string, b []byte) error {
	f, err := Parse(b)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	c.descriptors[strings.ToLower(f.Name)] = f.Descriptor()
	return nil
}

// Parse decodes and validates one puzzle file.
func Parse(b []byte) (*PuzzleFile, error) {
	var f PuzzleFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle file: %w", err)
	}

	if f.Version != 1 {
		return nil, fmt.Errorf("unsupported puzzle file version: %d", f.Version)
	}
	if strings.TrimSpace(f.Name) == "" {
		return nil, fmt.Errorf("puzzle file has no name")
	}
	if strings.TrimSpace(f.Definitions) == "" {
		return nil, fmt.Errorf("puzzle %q has no definitions", f.Name)
	}

	return &f, nil
}

// Names returns the puzzle names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.descriptors))
	for _, d := range c.descriptors {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

// Descriptor looks up a puzzle by name, ignoring case.
func (c *Catalog) Descriptor(name string) (twisty.Descriptor, bool) {
	d, ok := c.descriptors[strings.ToLower(name)]
	return d, ok
}

// Puzzle builds the named puzzle.
func (c *Catalog) Puzzle(name string, opts ...twisty.Option) (*twisty.Puzzle, error) {
	d, ok := c.Descriptor(name)
	if !ok {
		return nil, fmt.Errorf("unknown puzzle %q", name)
	}
	return twisty.New(d, opts...)
}
