// tile2048 is the sliding-tile puzzle in the terminal.
//
// Usage:
//
//	tile2048 [play]              - Play in the terminal (default)
//	tile2048 sim                 - Play headless with a script or the greedy policy
//	tile2048 config show         - Print the effective configuration
//	tile2048 config init [path]  - Write the default configuration file
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search ~/.tile2048, ./configs)
//	--seed <value>      - RNG seed for reproducible games (0 = time based)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Log destination while the terminal UI runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tile2048",
	Short: "Slide and merge tiles until you reach 2048",
	Long: `tile2048 is the sliding-tile puzzle for your terminal.

Slide every tile in one direction; equal neighbours merge into their sum.
Each move that changes the board spawns a new 2 (or, rarely, a 4).
Reach the target tile to win; run out of moves and the game is over.

Available commands:
  play     - Play in the terminal (default)
  sim      - Play without a terminal and print the boards
  config   - Show or create the configuration file

Examples:
  tile2048
  tile2048 --size 5 --target 4096
  tile2048 sim --moves left,up,right,down --seed 42
  tile2048 config init`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs here while the game is on screen")

	// The root command plays too
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
