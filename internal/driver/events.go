package driver

import "github.com/vovakirdan/funclicker/internal/game"

// Event reports something the driver did in response to a call.
// The host uses events for feedback and bookkeeping; the state itself is
// always read back through Driver.State.
type Event interface {
	driverEvent()
}

// RoundStarted is emitted when tiles for a new round are spawned.
type RoundStarted struct {
	Iteration int
	BoardSize int
	Tiles     int
	TimeLimit float64
}

func (RoundStarted) driverEvent() {}

// TileCleared is emitted for a correct click.
type TileCleared struct {
	Number    int
	Remaining int // Visible tiles left in the round
}

func (TileCleared) driverEvent() {}

// MisClick is emitted when a click targets anything but the next tile.
type MisClick struct {
	Number   int
	Expected int
}

func (MisClick) driverEvent() {}

// RoundCleared is emitted when the last tile of a round is clicked.
// The next round starts after the configured clear delay.
type RoundCleared struct {
	Iteration int
}

func (RoundCleared) driverEvent() {}

// GameEnded is emitted once when the countdown reaches zero.
type GameEnded struct {
	Result game.Result
}

func (GameEnded) driverEvent() {}
