package cli

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/catalog"
	"github.com/SeamusWaldron/twisty/internal/storage"
)

// openDB opens the database and applies pending migrations.
func openDB() (*storage.DB, error) {
	db, err := storage.OpenMigrated(getDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// loadCatalog returns the built-in puzzles plus the files named in the config.
func loadCatalog() (*catalog.Catalog, error) {
	c, err := catalog.Builtin()
	if err != nil {
		return nil, err
	}
	for _, f := range appConfig.PuzzleFiles {
		if err := c.LoadFile(f); err != nil {
			return nil, err
		}
		log.WithField("file", f).Debug("loaded puzzle file")
	}
	return c, nil
}

// puzzleOptions returns the engine options derived from config and flags.
func puzzleOptions(extra ...twisty.Option) []twisty.Option {
	opts := []twisty.Option{twisty.WithLogger(log)}
	if appConfig.MaxOrder > 0 {
		opts = append(opts, twisty.WithMaxOrder(appConfig.MaxOrder))
	}
	return append(opts, extra...)
}

// loadPuzzle builds a puzzle from the catalog, including the derived moves
// saved for it.
func loadPuzzle(name string) (*twisty.Puzzle, error) {
	c, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	desc, ok := c.Descriptor(name)
	if !ok {
		return nil, fmt.Errorf("unknown puzzle %q (available: %s)", name, strings.Join(c.Names(), ", "))
	}

	db, err := openDB()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	lines, err := storage.NewDerivedMoveRepository(db).Definitions(desc.Name)
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 {
		log.WithField("puzzle", desc.Name).Debugf("loading %d derived moves", len(lines))
	}

	return twisty.New(desc, puzzleOptions(twisty.WithExtraDefinitions(lines...))...)
}

// warnSkipped prints the tokens a move string could not resolve. Skipped
// tokens never fail a command.
func warnSkipped(err error) []string {
	skipped := twisty.SkippedTokens(err)
	if err != nil {
		log.WithField("tokens", skipped).Warn("skipped tokens")
	}
	return skipped
}

// joinAlg rebuilds a move string from positional arguments.
func joinAlg(args []string) string {
	return strings.Join(args, " ")
}
