// funclicker is a terminal reflex game: click the numbered tiles in
// ascending order before the round timer runs out.
//
// Usage:
//
//	funclicker                 - Play (same as "funclicker play")
//	funclicker play            - Play
//	funclicker schedule        - Print the round difficulty table
//	funclicker config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default from config: 60)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--config <path>     - Use a custom config YAML
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file (default: no logging)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
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
	Use:   "funclicker",
	Short: "FunClicker - click the numbers in ascending order",
	Long: `FunClicker is a reflex game for the terminal. Numbered tiles appear on
a square board; click them with the mouse in ascending order before the
timer runs out. Every round is faster and the board keeps growing.

Available commands:
  play      - Play the game (default)
  schedule  - Show board size, time limit and tile count per round
  config    - Print the default configuration

Examples:
  funclicker
  funclicker play --seed 42
  funclicker schedule --rounds 30
  funclicker config > ~/.funclicker/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(configCmd)
}
