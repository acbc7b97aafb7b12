// dragoncave is a terminal cave platformer: collect treasures, sneak past
// sleeping dragons and reach the exit of every level.
//
// Usage:
//
//	dragoncave play               - Play the classic cave
//	dragoncave levels             - List the levels of a catalog
//	dragoncave levels validate f  - Check a YAML level catalog
//	dragoncave catalogs           - List built-in level catalogs
//	dragoncave serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import catalogs to register them
	_ "github.com/vovakirdan/dragoncave/internal/catalogs/classic"
	_ "github.com/vovakirdan/dragoncave/internal/catalogs/training"
)

var version = "dev"

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "dragoncave",
	Short:   "Dragon Cave - a cave platformer in your terminal",
	Version: version,
	Long: `Dragon Cave is a side-scrolling platformer for the terminal. Explore
the cave, collect treasures, drop rocks to lure dragons away and reach the
exit of every level.

Available commands:
  play      - Play a level catalog
  levels    - List or validate levels
  catalogs  - Show the built-in level catalogs
  serve     - Start SSH server for remote play

Examples:
  dragoncave play
  dragoncave play --dragons 3
  dragoncave play --levels ./my-cave.yaml --watch
  dragoncave serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(catalogsCmd)
	rootCmd.AddCommand(serveCmd)
}
