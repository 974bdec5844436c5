package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [puzzle...]",
	Short: "Check puzzle definitions",
	Long: `Build each puzzle and report definition problems: malformed piece tokens,
repeated pieces, moves that do not return to identity within the order bound,
unknown reference pieces and candidate rotations that do not resolve.

Saved derived moves are checked with their puzzle. Without arguments every
known puzzle is checked. The command fails if any puzzle has problems.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	names := args
	if len(names) == 0 {
		names = c.Names()
	}
	out := cmd.OutOrStdout()

	failed := 0
	for _, name := range names {
		p, err := loadPuzzle(name)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", errorStyle.Render("FAIL"), name, err)
			continue
		}

		report := p.Report()
		if report.OK() {
			fmt.Fprintf(out, "%s %s (%d moves)\n", okStyle.Render("ok"), p.Name(), len(p.Moves()))
			continue
		}
		failed++
		fmt.Fprintf(out, "%s %s\n", errorStyle.Render("FAIL"), p.Name())
		for _, d := range report.Diagnostics {
			fmt.Fprintf(out, "  %v\n", d)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles have problems", failed, len(names))
	}
	return nil
}
