// wavetap is a terminal reflex arcade game: a colored wave sweeps across the
// board and you must tap the moving target cell while the wave lights it.
//
// Usage:
//
//	wavetap play             - Play in the local terminal
//	wavetap serve            - Start SSH server for remote play
//	wavetap scores           - Show the high score table
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.wavetap/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wavetap",
	Short: "wavetap - Tap the target while the wave lights it",
	Long: `wavetap is a terminal reflex game. A colored wave sweeps across a
15x20 board; a single target cell keeps moving. Click the target (or steer
the cursor onto it and press Space) while the wave lights it to score.
Consecutive hits build a combo, levels speed everything up, and every miss
or ignored target costs a life.

Examples:
  wavetap play
  wavetap play --difficulty hard
  wavetap serve --ssh :2222
  wavetap scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wavetap/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
