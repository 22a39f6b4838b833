package board

import (
	"testing"

	"github.com/vovakirdan/funclicker/internal/game"
)

// fixedSource returns a constant from Intn and never reorders on Shuffle.
type fixedSource struct {
	pick func(n int) int
}

func (f fixedSource) Intn(n int) int {
	return f.pick(n)
}

func (f fixedSource) Shuffle(int, func(i, j int)) {}

func lowest() Source  { return fixedSource{pick: func(int) int { return 0 }} }
func highest() Source { return fixedSource{pick: func(n int) int { return n - 1 }} }

func TestTileCountEarlyRounds(t *testing.T) {
	rng := NewSource(1)
	for _, size := range []int{10, 12, 30} {
		if got := TileCount(rng, 1, size); got != 1 {
			t.Errorf("TileCount(1, %d) = %d, expected 1", size, got)
		}
		if got := TileCount(rng, 2, size); got != 2 {
			t.Errorf("TileCount(2, %d) = %d, expected 2", size, got)
		}
	}
}

func TestTileCountBounds(t *testing.T) {
	tests := []struct {
		boardSize int
		min, max  int
	}{
		{10, 4, 7},
		{12, 4, 8},
		{14, 5, 10},
		{16, 6, 11},
	}

	for _, tc := range tests {
		if got := TileCount(lowest(), 3, tc.boardSize); got != tc.min {
			t.Errorf("TileCount(lowest, 3, %d) = %d, expected %d", tc.boardSize, got, tc.min)
		}
		if got := TileCount(highest(), 3, tc.boardSize); got != tc.max {
			t.Errorf("TileCount(highest, 3, %d) = %d, expected %d", tc.boardSize, got, tc.max)
		}
	}
}

func TestTileCountRandomWithinRange(t *testing.T) {
	rng := NewSource(42)
	for n := 3; n <= 60; n++ {
		size := game.BoardSize(n)
		lo, hi := (size+2)/3, (2*size+2)/3
		for i := 0; i < 50; i++ {
			got := TileCount(rng, n, size)
			if got < lo || got > hi {
				t.Fatalf("TileCount(%d, %d) = %d outside [%d, %d]", n, size, got, lo, hi)
			}
		}
	}
}

func TestEmptyPositions(t *testing.T) {
	all := EmptyPositions(3, nil)
	if len(all) != 9 {
		t.Fatalf("len(EmptyPositions(3)) = %d, expected 9", len(all))
	}
	if all[0] != (game.Position{Row: 0, Col: 0}) || all[8] != (game.Position{Row: 2, Col: 2}) {
		t.Errorf("EmptyPositions should be row-major, got first %v last %v", all[0], all[8])
	}

	occupied := []game.Position{{Row: 1, Col: 1}, {Row: 0, Col: 2}}
	rest := EmptyPositions(3, occupied)
	if len(rest) != 7 {
		t.Fatalf("len(EmptyPositions with 2 occupied) = %d, expected 7", len(rest))
	}
	for _, p := range rest {
		for _, o := range occupied {
			if p == o {
				t.Errorf("occupied position %v returned as empty", p)
			}
		}
	}
}

func TestEmptyPositionsIgnoresOffBoardCells(t *testing.T) {
	tests := []struct {
		name      string
		boardSize int
		occupied  []game.Position
		expected  int
	}{
		{"off-board cell on full board", 1, []game.Position{{Row: 0, Col: 0}, {Row: 5, Col: 5}}, 0},
		{"negative coordinates", 2, []game.Position{{Row: -1, Col: 0}, {Row: 0, Col: -3}}, 4},
		{"duplicates and strays", 2, []game.Position{{Row: 1, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 0, Col: 9}}, 3},
		{"empty board", 0, []game.Position{{Row: 0, Col: 0}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EmptyPositions(tt.boardSize, tt.occupied); len(got) != tt.expected {
				t.Errorf("len(EmptyPositions(%d, %v)) = %d, expected %d", tt.boardSize, tt.occupied, len(got), tt.expected)
			}
		})
	}

	rng := NewSource(1)
	if got := RandomPositions(rng, 3, 1, game.Position{Row: 0, Col: 0}, game.Position{Row: 7, Col: 7}); len(got) != 0 {
		t.Errorf("RandomPositions on a full board = %v, expected none", got)
	}
}

func TestRandomPositionsDistinctAndInBounds(t *testing.T) {
	rng := NewSource(7)
	for _, size := range []int{1, 10, 12, 20} {
		for count := 0; count <= 25; count++ {
			positions := RandomPositions(rng, count, size)

			expected := count
			if expected > size*size {
				expected = size * size
			}
			if len(positions) != expected {
				t.Fatalf("RandomPositions(%d, %d) returned %d positions, expected %d", count, size, len(positions), expected)
			}

			seen := make(map[game.Position]bool)
			for _, p := range positions {
				if p.Row < 0 || p.Row >= size || p.Col < 0 || p.Col >= size {
					t.Fatalf("position %v outside %dx%d board", p, size, size)
				}
				if seen[p] {
					t.Fatalf("duplicate position %v", p)
				}
				seen[p] = true
			}
		}
	}
}

func TestRandomPositionsRespectsOccupied(t *testing.T) {
	occupied := []game.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	positions := RandomPositions(NewSource(3), 10, 2, occupied...)

	if len(positions) != 1 || positions[0] != (game.Position{Row: 1, Col: 1}) {
		t.Errorf("RandomPositions on nearly full board = %v, expected [{1 1}]", positions)
	}
}

func TestRandomPositionsCoversBoard(t *testing.T) {
	// Every cell of a small board should be reachable as the first pick.
	rng := NewSource(11)
	seen := make(map[game.Position]bool)
	for i := 0; i < 500; i++ {
		seen[RandomPositions(rng, 1, 3)[0]] = true
	}
	if len(seen) != 9 {
		t.Errorf("first pick covered %d of 9 cells", len(seen))
	}
}

func TestGenerateTiles(t *testing.T) {
	rng := NewSource(99)
	tiles := GenerateTiles(rng, 5, 10, 17)

	if len(tiles) < 4 || len(tiles) > 7 {
		t.Fatalf("len(GenerateTiles(5, 10)) = %d, expected within [4, 7]", len(tiles))
	}

	seen := make(map[game.Position]bool)
	for i, tile := range tiles {
		if tile.Number != 17+i {
			t.Errorf("tiles[%d].Number = %d, expected %d", i, tile.Number, 17+i)
		}
		if tile.ID != TileID(tile.Number) {
			t.Errorf("tiles[%d].ID = %q, expected %q", i, tile.ID, TileID(tile.Number))
		}
		p := game.Position{Row: tile.Row, Col: tile.Col}
		if seen[p] {
			t.Errorf("duplicate placement %v", p)
		}
		seen[p] = true
	}
}

func TestGenerateTilesDeterministic(t *testing.T) {
	a := GenerateTiles(NewSource(5), 8, 12, 30)
	b := GenerateTiles(NewSource(5), 8, 12, 30)

	if len(a) != len(b) {
		t.Fatalf("same seed produced %d and %d tiles", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("tiles[%d] differ: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnRoundTrip(t *testing.T) {
	gen := NewGenerator(NewSource(21))
	s := game.Reduce(game.Initial(), game.StartGame{})

	for round := 1; round <= 12; round++ {
		start := s.GlobalNextNumber
		s = game.Reduce(s, game.SpawnTiles{Tiles: gen.ForState(s)})

		matches := 0
		for _, tile := range s.Tiles {
			if tile.Number == start {
				matches++
				if !tile.Visible {
					t.Fatalf("round %d: tile %d not visible", round, start)
				}
			}
		}
		if matches != 1 {
			t.Fatalf("round %d: %d tiles carry number %d, expected 1", round, matches, start)
		}
		if s.NextExpected != start {
			t.Fatalf("round %d: NextExpected = %d, expected %d", round, s.NextExpected, start)
		}

		for _, tile := range s.Tiles {
			s = game.Reduce(s, game.ClickTile{Number: tile.Number})
		}
		if !AllCleared(s.Tiles) {
			t.Fatalf("round %d: board not cleared after clicking every tile", round)
		}
		s = game.Reduce(s, game.NextIteration{})
	}
}

func TestAllCleared(t *testing.T) {
	tests := []struct {
		name     string
		tiles    []game.Tile
		expected bool
	}{
		{"nil", nil, false},
		{"empty", []game.Tile{}, false},
		{"one visible", []game.Tile{{Number: 1, Visible: true}}, false},
		{"mixed", []game.Tile{{Number: 1}, {Number: 2, Visible: true}}, false},
		{"all hidden", []game.Tile{{Number: 1}, {Number: 2}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AllCleared(tc.tiles); got != tc.expected {
				t.Errorf("AllCleared() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
