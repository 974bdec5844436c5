package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty/internal/storage"
)

var (
	historyPuzzle string
	historyLimit  int
	historyLast   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scrambles",
	Long:  `List scrambles recorded with "scramble --save", newest first. Use --last to show the most recent one in full.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&historyPuzzle, "puzzle", "p", "", "Only show scrambles of this puzzle")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of scrambles to show")
	historyCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent scramble in full")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	out := cmd.OutOrStdout()

	if historyLast {
		s, err := repo.GetLast()
		if err != nil {
			return err
		}
		if s == nil {
			fmt.Fprintln(out, "No scrambles recorded yet")
			return nil
		}
		printScramble(out, scrambleResult{
			ID:                s.ScrambleID,
			Puzzle:            s.Puzzle,
			Notation:          s.Notation,
			Normalized:        s.Normalized,
			ReferenceRotation: s.ReferenceRotation,
			Cycles:            s.Cycles,
			Solved:            s.Cycles == "X:",
			Skipped:           s.Skipped,
			State:             s.State,
		}, false)
		return nil
	}

	scrambles, err := repo.List(historyPuzzle, historyLimit)
	if err != nil {
		return err
	}
	if len(scrambles) == 0 {
		fmt.Fprintln(out, "No scrambles recorded yet")
		fmt.Fprintln(out, "Record one with: twisty scramble <puzzle> <moves> --save")
		return nil
	}

	fmt.Fprintf(out, "Recent scrambles (showing %d):\n\n", len(scrambles))
	fmt.Fprintf(out, "%-36s  %-20s  %-12s  %s\n", "ID", "Created", "Puzzle", "Moves")
	fmt.Fprintln(out, "------------------------------------  --------------------  ------------  -----")
	for _, s := range scrambles {
		notation := s.Notation
		if len(notation) > 40 {
			notation = notation[:37] + "..."
		}
		fmt.Fprintf(out, "%-36s  %-20s  %-12s  %s\n",
			s.ScrambleID,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.Puzzle,
			notation,
		)
	}
	return nil
}
