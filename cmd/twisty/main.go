// twisty - apply move notation to twisty puzzles described by cycle definitions.
package main

import (
	"github.com/SeamusWaldron/twisty/internal/cli"
)

func main() {
	cli.Execute()
}
