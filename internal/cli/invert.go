package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var invertCmd = &cobra.Command{
	Use:   "invert <puzzle> <moves...>",
	Short: "Print the setup moves for an algorithm",
	Long: `Print the inverse of an algorithm, prefixed with the rotation that brings
the puzzle's solve reference piece home. Applying the algorithm after the
printed moves solves the puzzle up to a whole-puzzle rotation.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runInvert,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <puzzle> <moves...>",
	Short: "Rewrite a move string in its shortest form",
	Long: `Reduce every token modulo its move order and prefer the shorter direction:
R3 on a cube becomes R', R4 disappears, R3 on a megaminx becomes R2'.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(invertCmd)
	rootCmd.AddCommand(normalizeCmd)
}

func runInvert(cmd *cobra.Command, args []string) error {
	p, err := loadPuzzle(args[0])
	if err != nil {
		return err
	}

	setup, err := p.InverseScramble(joinAlg(args[1:]))
	warnSkipped(err)
	fmt.Fprintln(cmd.OutOrStdout(), setup)
	return nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	p, err := loadPuzzle(args[0])
	if err != nil {
		return err
	}

	normalized, err := p.Normalize(joinAlg(args[1:]))
	warnSkipped(err)
	fmt.Fprintln(cmd.OutOrStdout(), normalized)
	return nil
}
