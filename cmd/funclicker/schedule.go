package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/funclicker/internal/board"
)

var flagRounds int

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the round difficulty table",
	Long: `Prints board size, time limit and the range of tiles spawned for each
round. Rounds 1 and 2 always spawn one and two tiles.

Examples:
  funclicker schedule
  funclicker schedule --rounds 40`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if flagRounds < 1 {
			fmt.Fprintln(os.Stderr, "Error: --rounds must be at least 1")
			os.Exit(1)
		}
		writeSchedule(os.Stdout, flagRounds)
	},
}

func init() {
	scheduleCmd.Flags().IntVar(&flagRounds, "rounds", 20, "Number of rounds to show")
}

// writeSchedule prints the first n rounds.
func writeSchedule(w io.Writer, n int) {
	fmt.Fprintf(w, "  %5s  %-7s  %-5s  %s\n", "Round", "Board", "Time", "Tiles")
	fmt.Fprintf(w, "  %5s  %-7s  %-5s  %s\n", "-----", "-----", "----", "-----")

	for _, r := range board.ScheduleRange(1, n) {
		tiles := fmt.Sprintf("%d", r.MinTiles)
		if r.MaxTiles != r.MinTiles {
			tiles = fmt.Sprintf("%d-%d", r.MinTiles, r.MaxTiles)
		}
		size := fmt.Sprintf("%dx%d", r.BoardSize, r.BoardSize)
		fmt.Fprintf(w, "  %5d  %-7s  %-5s  %s\n", r.Iteration, size, fmt.Sprintf("%.1fs", r.TimeLimit), tiles)
	}
}
