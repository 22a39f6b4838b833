// Package game holds the authoritative FunClicker state and the pure reducer
// that applies actions to it. It performs no I/O and reads no clock or
// randomness: tile generation and timekeeping live with the caller.
package game

// Status is the lifecycle phase of a game.
type Status int

const (
	StatusIdle     Status = iota // Before the first start or after a reset
	StatusPlaying                // A round is active
	StatusGameOver               // Terminal until ResetGame or StartGame
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Default values for a fresh game.
const (
	InitialBoardSize = 10
	InitialTimeLimit = 4.0
)

// Position is a board cell. Both coordinates are in [0, boardSize).
type Position struct {
	Row int
	Col int
}

// TileSpec describes a generated tile that has not been spawned yet.
type TileSpec struct {
	ID     string
	Number int
	Row    int
	Col    int
}

// Tile is a spawned tile on the board.
type Tile struct {
	ID      string
	Number  int
	Row     int
	Col     int
	Visible bool
}

// Position returns the cell the tile occupies.
func (t Tile) Position() Position {
	return Position{Row: t.Row, Col: t.Col}
}

// State is the complete game state. Treat it as immutable: Reduce never
// modifies the Tiles slice of its input, it allocates a new one instead.
type State struct {
	Status           Status
	Iteration        int // 1-indexed round number
	BoardSize        int // Edge length of the square board
	Tiles            []Tile
	NextExpected     int // The only number a click may consume next
	HighestClicked   int // Score: last correctly clicked number
	TimeLimit        float64
	TimeRemaining    float64
	GlobalNextNumber int // Number assigned to the next spawned tile
}

// Initial returns the Idle state a new game starts from.
func Initial() State {
	return State{
		Status:           StatusIdle,
		Iteration:        1,
		BoardSize:        InitialBoardSize,
		Tiles:            nil,
		NextExpected:     1,
		HighestClicked:   0,
		TimeLimit:        InitialTimeLimit,
		TimeRemaining:    InitialTimeLimit,
		GlobalNextNumber: 1,
	}
}

// Playing reports whether a round is active.
func (s State) Playing() bool {
	return s.Status == StatusPlaying
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := s
	if s.Tiles != nil {
		out.Tiles = make([]Tile, len(s.Tiles))
		copy(out.Tiles, s.Tiles)
	}
	return out
}

// VisibleTiles returns the tiles that have not been clicked yet.
func (s State) VisibleTiles() []Tile {
	visible := make([]Tile, 0, len(s.Tiles))
	for _, t := range s.Tiles {
		if t.Visible {
			visible = append(visible, t)
		}
	}
	return visible
}

// TileAt returns the visible tile at the given position, if any.
func (s State) TileAt(p Position) (Tile, bool) {
	for _, t := range s.Tiles {
		if t.Visible && t.Row == p.Row && t.Col == p.Col {
			return t, true
		}
	}
	return Tile{}, false
}

// Apply reduces a sequence of actions in order.
func (s State) Apply(actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

// Result summarizes a finished (or running) game.
type Result struct {
	Score       int
	Rounds      int
	AvgPerRound float64
}

// Summary computes the end-of-game figures shown to the player.
func Summary(s State) Result {
	r := Result{
		Score:  s.HighestClicked,
		Rounds: s.Iteration,
	}
	if s.HighestClicked > 0 && s.Iteration > 0 {
		r.AvgPerRound = float64(s.HighestClicked) / float64(s.Iteration)
	}
	return r
}
