package board

import "github.com/vovakirdan/funclicker/internal/game"

// Round describes the parameters of one round without drawing randomness.
type Round struct {
	Iteration int
	BoardSize int
	TimeLimit float64
	MinTiles  int
	MaxTiles  int
}

// Schedule returns the parameters of round n.
func Schedule(n int) Round {
	size := game.BoardSize(n)
	r := Round{
		Iteration: n,
		BoardSize: size,
		TimeLimit: game.TimeLimit(n),
	}

	switch {
	case n <= 1:
		r.MinTiles, r.MaxTiles = 1, 1
	case n == 2:
		r.MinTiles, r.MaxTiles = 2, 2
	default:
		r.MinTiles, r.MaxTiles = tileRange(size)
	}
	return r
}

// ScheduleRange returns rounds first through last inclusive.
func ScheduleRange(first, last int) []Round {
	if first < 1 {
		first = 1
	}
	if last < first {
		return nil
	}

	rounds := make([]Round, 0, last-first+1)
	for n := first; n <= last; n++ {
		rounds = append(rounds, Schedule(n))
	}
	return rounds
}
