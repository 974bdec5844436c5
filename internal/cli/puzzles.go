package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
)

var puzzlesCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "List available puzzles",
	Long:  `List the built-in puzzles and those loaded from puzzle_files in the config.`,
	Args:  cobra.NoArgs,
	RunE:  runPuzzles,
}

var movesCmd = &cobra.Command{
	Use:   "moves <puzzle>",
	Short: "List the moves of a puzzle",
	Long:  `List every move of a puzzle with its order and cycle definition, including saved derived moves.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runMoves,
}

func init() {
	rootCmd.AddCommand(puzzlesCmd)
	rootCmd.AddCommand(movesCmd)
}

func runPuzzles(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-20s  %-6s  %-9s  %s\n", "Puzzle", "Moves", "Positions", "Reference")
	fmt.Fprintln(out, "--------------------  ------  ---------  ---------")
	for _, name := range c.Names() {
		desc, _ := c.Descriptor(name)
		p, err := twisty.New(desc, puzzleOptions()...)
		if err != nil {
			return err
		}
		ref := desc.Reference
		if ref == "" {
			ref = "-"
		}
		fmt.Fprintf(out, "%-20s  %-6d  %-9d  %s\n", name, len(p.Moves()), p.State().Len(), ref)
	}
	return nil
}

func runMoves(cmd *cobra.Command, args []string) error {
	p, err := loadPuzzle(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, titleStyle.Render(p.Name()))
	for _, name := range p.Moves() {
		m, _ := p.Definition(name)
		order := "-"
		if n, ok := p.Order(name); ok {
			order = fmt.Sprintf("%d", n)
		}
		fmt.Fprintf(out, "%-6s  %-2s  %s\n", name, order, m.String())
	}
	return nil
}
