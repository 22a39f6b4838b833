// Package board computes round parameters and generates random,
// non-overlapping tile placements. All randomness comes from an injected
// Source so generation is reproducible under a fixed seed.
package board

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/funclicker/internal/game"
)

// Source provides the random primitives the generator needs.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Shuffle permutes n elements uniformly by calling swap.
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// TileCount returns how many tiles to spawn in the given round.
// Round 1 spawns one tile, round 2 spawns two, later rounds draw uniformly
// from [ceil(size/3), ceil(2*size/3)].
func TileCount(rng Source, iteration, boardSize int) int {
	switch {
	case iteration <= 1:
		return 1
	case iteration == 2:
		return 2
	}

	lo, hi := tileRange(boardSize)
	return lo + rng.Intn(hi-lo+1)
}

// tileRange returns the inclusive tile count bounds for rounds 3 and later.
func tileRange(boardSize int) (int, int) {
	return ceilDiv(boardSize, 3), ceilDiv(2*boardSize, 3)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// EmptyPositions returns every cell of the board not listed in occupied,
// in row-major order. Occupied cells off the board are ignored.
func EmptyPositions(boardSize int, occupied []game.Position) []game.Position {
	if boardSize <= 0 {
		return nil
	}

	taken := make(map[game.Position]struct{}, len(occupied))
	for _, p := range occupied {
		if p.Row < 0 || p.Row >= boardSize || p.Col < 0 || p.Col >= boardSize {
			continue
		}
		taken[p] = struct{}{}
	}

	positions := make([]game.Position, 0, boardSize*boardSize-len(taken))
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			p := game.Position{Row: row, Col: col}
			if _, ok := taken[p]; ok {
				continue
			}
			positions = append(positions, p)
		}
	}
	return positions
}

// RandomPositions picks up to count distinct empty cells uniformly at random.
func RandomPositions(rng Source, count, boardSize int, occupied ...game.Position) []game.Position {
	empty := EmptyPositions(boardSize, occupied)
	rng.Shuffle(len(empty), func(i, j int) {
		empty[i], empty[j] = empty[j], empty[i]
	})

	if count < 0 {
		count = 0
	}
	if count > len(empty) {
		count = len(empty)
	}
	return empty[:count]
}

// GenerateTiles builds the tiles for a round. Numbers form the ascending run
// startNumber, startNumber+1, ... so the smallest one is clickable first.
func GenerateTiles(rng Source, iteration, boardSize, startNumber int) []game.TileSpec {
	count := TileCount(rng, iteration, boardSize)
	positions := RandomPositions(rng, count, boardSize)

	tiles := make([]game.TileSpec, len(positions))
	for i, p := range positions {
		number := startNumber + i
		tiles[i] = game.TileSpec{
			ID:     TileID(number),
			Number: number,
			Row:    p.Row,
			Col:    p.Col,
		}
	}
	return tiles
}

// TileID returns the identifier of the tile carrying number. Numbers are
// unique for the lifetime of a game, so ids are too.
func TileID(number int) string {
	return fmt.Sprintf("tile-%d", number)
}

// AllCleared reports whether every tile of the round has been clicked.
// An empty board is not cleared: the round has not been spawned yet.
func AllCleared(tiles []game.Tile) bool {
	if len(tiles) == 0 {
		return false
	}
	for _, t := range tiles {
		if t.Visible {
			return false
		}
	}
	return true
}

// Generator binds a Source for repeated tile generation.
type Generator struct {
	rng Source
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng Source) *Generator {
	return &Generator{rng: rng}
}

// Generate returns the tiles for a round. See GenerateTiles.
func (g *Generator) Generate(iteration, boardSize, startNumber int) []game.TileSpec {
	return GenerateTiles(g.rng, iteration, boardSize, startNumber)
}

// ForState generates tiles for the state's current round.
func (g *Generator) ForState(s game.State) []game.TileSpec {
	return g.Generate(s.Iteration, s.BoardSize, s.GlobalNextNumber)
}
