package game

import "math"

// timeEpsilon is the remainder below which the countdown snaps to zero.
const timeEpsilon = 1e-9

// Action is a state transition request. The set of actions is closed.
type Action interface {
	action()
}

// StartGame begins a new game from any status.
type StartGame struct{}

// SpawnTiles replaces the board contents with freshly generated tiles.
// The numbers must form the contiguous run starting at GlobalNextNumber;
// the reducer does not check this.
type SpawnTiles struct {
	Tiles []TileSpec
}

// ClickTile consumes the tile carrying Number if it is the next expected one.
type ClickTile struct {
	Number int
}

// TickTimer subtracts Delta seconds from the countdown.
type TickTimer struct {
	Delta float64
}

// NextIteration advances to the next round.
type NextIteration struct{}

// GameOver ends the current game.
type GameOver struct{}

// ResetGame restores the Idle defaults.
type ResetGame struct{}

func (StartGame) action()     {}
func (SpawnTiles) action()    {}
func (ClickTile) action()     {}
func (TickTimer) action()     {}
func (NextIteration) action() {}
func (GameOver) action()      {}
func (ResetGame) action()     {}

// Reduce applies a single action and returns the resulting state.
// Actions that are invalid for the current status return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case StartGame:
		next := Initial()
		next.Status = StatusPlaying
		return next

	case SpawnTiles:
		if !s.Playing() {
			return s
		}
		return spawn(s, a.Tiles)

	case ClickTile:
		if !s.Playing() {
			return s
		}
		return click(s, a.Number)

	case TickTimer:
		if !s.Playing() {
			return s
		}
		return tick(s, a.Delta)

	case NextIteration:
		if !s.Playing() {
			return s
		}
		return advance(s)

	case GameOver:
		if s.Status == StatusIdle {
			return s
		}
		s.Status = StatusGameOver
		return s

	case ResetGame:
		return Initial()
	}

	return s
}

func spawn(s State, specs []TileSpec) State {
	tiles := make([]Tile, len(specs))
	maxNumber := 0
	for i, spec := range specs {
		tiles[i] = Tile{
			ID:      spec.ID,
			Number:  spec.Number,
			Row:     spec.Row,
			Col:     spec.Col,
			Visible: true,
		}
		if i == 0 || spec.Number > maxNumber {
			maxNumber = spec.Number
		}
	}

	s.Tiles = tiles
	if len(specs) > 0 {
		s.GlobalNextNumber = maxNumber + 1
	}
	return s
}

func click(s State, number int) State {
	if number != s.NextExpected {
		return s
	}

	idx := -1
	for i, t := range s.Tiles {
		if t.Number == number {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	tiles := make([]Tile, len(s.Tiles))
	copy(tiles, s.Tiles)
	tiles[idx].Visible = false

	s.Tiles = tiles
	s.NextExpected++
	s.HighestClicked = number
	return s
}

func tick(s State, delta float64) State {
	if delta < 0 || math.IsNaN(delta) {
		delta = 0
	}

	remaining := s.TimeRemaining - delta
	if remaining < timeEpsilon {
		remaining = 0
	}
	if remaining > s.TimeLimit {
		remaining = s.TimeLimit
	}

	s.TimeRemaining = remaining
	return s
}

func advance(s State) State {
	s.Iteration++
	s.BoardSize = BoardSize(s.Iteration)
	s.TimeLimit = TimeLimit(s.Iteration)
	s.TimeRemaining = s.TimeLimit
	s.Tiles = nil
	return s
}
