package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/storage"
)

var (
	deriveSave   bool
	deriveDelete bool
)

var deriveCmd = &cobra.Command{
	Use:   "derive <puzzle> <name> [moves...]",
	Short: "Turn a move string into a new move definition",
	Long: `Apply the move string to a solved puzzle and print the resulting state as
a move definition. With --save the move is stored and loaded into the puzzle
on every later run, so it can be used in notation like any other move.

Examples:
  twisty derive 3x3 M "r R'"
  twisty derive 3x3 Sune "R U R' U R U2 R'" --save
  twisty derive 3x3 Sune --delete`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDerive,
}

func init() {
	rootCmd.AddCommand(deriveCmd)
	deriveCmd.Flags().BoolVar(&deriveSave, "save", false, "Save the derived move for this puzzle")
	deriveCmd.Flags().BoolVar(&deriveDelete, "delete", false, "Delete a saved derived move")
}

func runDerive(cmd *cobra.Command, args []string) error {
	p, err := loadPuzzle(args[0])
	if err != nil {
		return err
	}
	name := args[1]
	out := cmd.OutOrStdout()

	if deriveDelete {
		return deleteDerived(cmd, p.Name(), name)
	}
	if len(args) < 3 {
		return fmt.Errorf("derive %s: no moves given", name)
	}
	alg := joinAlg(args[2:])

	line, err := p.Derive(name, alg)
	warnSkipped(err)

	// Registering the line runs the same checks as a built-in move.
	_, err = p.AddDefinition(line)
	if err != nil && !errors.Is(err, twisty.ErrOrderExceeded) {
		return fmt.Errorf("derived definition is invalid: %w", err)
	}

	var order *int
	if n, ok := p.Order(name); ok {
		order = &n
		fmt.Fprintf(out, "%s  (order %d)\n", line, n)
	} else {
		fmt.Fprintf(out, "%s  (order > bound)\n", line)
		log.WithField("move", name).Warn("derived move has no order; only the literal name can be applied")
	}

	if !deriveSave {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	err = storage.NewDerivedMoveRepository(db).Save(storage.DerivedMove{
		Puzzle:     p.Name(),
		Name:       name,
		Source:     alg,
		Definition: line,
		Order:      order,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %s for %s\n", name, p.Name())
	return nil
}

func deleteDerived(cmd *cobra.Command, puzzle, name string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	deleted, err := storage.NewDerivedMoveRepository(db).Delete(puzzle, name)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("no derived move %q for %s", name, puzzle)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s for %s\n", name, puzzle)
	return nil
}
