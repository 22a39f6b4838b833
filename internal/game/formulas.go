package game

import "math"

// Difficulty curve constants.
const (
	boardGrowthEvery = 6 // Rounds per board size step
	boardGrowthStep  = 2 // Cells added to the edge per step

	// Time limits are computed in tenths of a second so that repeated
	// subtraction of 0.1 cannot drift.
	timeLimitStartTenths = 40
	timeLimitFloor       = 2.0
)

// BoardSize returns the board edge length for round n (1-indexed).
// Rounds 1-6 use 10, 7-12 use 12, and so on.
func BoardSize(n int) int {
	if n < 1 {
		n = 1
	}
	return InitialBoardSize + ((n-1)/boardGrowthEvery)*boardGrowthStep
}

// TimeLimit returns the countdown budget in seconds for round n.
// Starts at 4.0s, loses 0.1s per round, never drops below 2.0s.
func TimeLimit(n int) float64 {
	if n < 1 {
		n = 1
	}
	tenths := timeLimitStartTenths - (n - 1)
	return math.Max(timeLimitFloor, float64(tenths)/10)
}
