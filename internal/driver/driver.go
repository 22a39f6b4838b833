// Package driver runs FunClicker rounds: it spawns tiles once per round,
// feeds elapsed clock time into the reducer, ends the game when time runs
// out and advances to the next round after a cleared board.
//
// A Driver is not safe for concurrent use. The TUI calls it only from the
// Bubble Tea update loop.
package driver

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/funclicker/internal/board"
	"github.com/vovakirdan/funclicker/internal/core"
	"github.com/vovakirdan/funclicker/internal/game"
)

// DefaultClearDelay is the pause between clearing a board and the next round.
const DefaultClearDelay = 100 * time.Millisecond

// Options configures a Driver.
type Options struct {
	// ClearDelay is the wait after the last tile before the next round.
	// Zero advances immediately.
	ClearDelay time.Duration
	// Logger receives round lifecycle logs. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns options with the standard clear delay.
func DefaultOptions() Options {
	return Options{ClearDelay: DefaultClearDelay}
}

// Driver owns the game state of a single player.
type Driver struct {
	state  game.State
	gen    *board.Generator
	clock  core.Clock
	logger *log.Logger

	clearDelay time.Duration

	spawnedFor   int // Iteration whose tiles were spawned, 0 if none
	lastTick     time.Time
	hasBaseline  bool
	clearPending bool
	clearedAt    time.Time
	paused       bool
}

// New creates a driver in the Idle state.
func New(gen *board.Generator, clock core.Clock, opts Options) *Driver {
	if clock == nil {
		clock = core.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.ClearDelay < 0 {
		opts.ClearDelay = 0
	}

	return &Driver{
		state:      game.Initial(),
		gen:        gen,
		clock:      clock,
		logger:     logger,
		clearDelay: opts.ClearDelay,
	}
}

// State returns a copy of the current game state.
func (d *Driver) State() game.State {
	return d.state.Clone()
}

// Paused reports whether the countdown is suspended.
func (d *Driver) Paused() bool {
	return d.paused
}

// ClearPending reports whether a cleared board is waiting for the next round.
func (d *Driver) ClearPending() bool {
	return d.clearPending
}

// Start begins a new game from round 1, whatever the current status.
func (d *Driver) Start() []Event {
	d.state = game.Reduce(d.state, game.StartGame{})
	d.resetGuards()
	d.logger.Info("game started")
	return d.spawn(nil)
}

// Reset returns to the Idle state.
func (d *Driver) Reset() {
	d.state = game.Reduce(d.state, game.ResetGame{})
	d.resetGuards()
	d.logger.Debug("game reset")
}

// Restart resets and immediately starts a new game.
func (d *Driver) Restart() []Event {
	d.Reset()
	return d.Start()
}

// Pause suspends the countdown. Time up to the pause is charged; time
// spent paused is not. An expiry found here is reported by the next Tick.
func (d *Driver) Pause() {
	if d.paused {
		return
	}
	if d.state.Playing() && !d.clearPending && d.hasBaseline {
		now := d.clock.Now()
		d.state = game.Reduce(d.state, game.TickTimer{Delta: now.Sub(d.lastTick).Seconds()})
		d.lastTick = now
	}
	d.paused = true
	d.hasBaseline = false
	d.logger.Debug("paused", "iteration", d.state.Iteration)
}

// Resume continues a paused countdown.
func (d *Driver) Resume() {
	if !d.paused {
		return
	}
	d.paused = false
	d.markBaseline()
	d.logger.Debug("resumed", "iteration", d.state.Iteration)
}

// Tick advances the countdown by the clock time since the previous tick,
// or since the round was spawned or resumed. While a cleared board is
// pending the countdown is frozen, so the clear delay is never charged to
// either round, and Tick starts the next round once the delay has passed.
func (d *Driver) Tick() []Event {
	if !d.state.Playing() || d.paused {
		return nil
	}

	now := d.clock.Now()
	if d.clearPending {
		if now.Sub(d.clearedAt) < d.clearDelay {
			return nil
		}
		return d.nextRound(nil)
	}

	return d.advanceTimer(now, nil)
}

// Click handles a click on the tile carrying number. Time elapsed since
// the previous tick is applied first, so a click after expiry ends the
// game instead of scoring.
func (d *Driver) Click(number int) []Event {
	if !d.state.Playing() || d.paused || d.clearPending {
		return nil
	}

	now := d.clock.Now()
	events := d.advanceTimer(now, nil)
	if !d.state.Playing() {
		return events
	}

	prev := d.state
	d.state = game.Reduce(d.state, game.ClickTile{Number: number})
	if d.state.HighestClicked == prev.HighestClicked {
		d.logger.Debug("misclick", "number", number, "expected", prev.NextExpected)
		return append(events, MisClick{Number: number, Expected: prev.NextExpected})
	}

	remaining := len(d.state.VisibleTiles())
	events = append(events, TileCleared{Number: number, Remaining: remaining})
	if !board.AllCleared(d.state.Tiles) {
		return events
	}

	d.logger.Info("round cleared",
		"iteration", d.state.Iteration,
		"time_left", d.state.TimeRemaining)
	events = append(events, RoundCleared{Iteration: d.state.Iteration})
	d.clearPending = true
	d.clearedAt = now
	if d.clearDelay == 0 {
		return d.nextRound(events)
	}
	return events
}

// advanceTimer feeds elapsed time into the state and ends the game when
// the countdown reaches zero.
func (d *Driver) advanceTimer(now time.Time, events []Event) []Event {
	if !d.hasBaseline {
		d.lastTick = now
		d.hasBaseline = true
		return events
	}

	delta := now.Sub(d.lastTick).Seconds()
	d.lastTick = now
	d.state = game.Reduce(d.state, game.TickTimer{Delta: delta})

	if d.state.Playing() && d.state.TimeRemaining <= 0 {
		d.state = game.Reduce(d.state, game.GameOver{})
		result := game.Summary(d.state)
		d.logger.Info("game over",
			"score", result.Score,
			"rounds", result.Rounds)
		events = append(events, GameEnded{Result: result})
	}
	return events
}

// nextRound advances past a cleared board and spawns the new round.
func (d *Driver) nextRound(events []Event) []Event {
	d.clearPending = false
	d.state = game.Reduce(d.state, game.NextIteration{})
	return d.spawn(events)
}

// spawn places the current round's tiles unless that already happened.
func (d *Driver) spawn(events []Event) []Event {
	if !d.state.Playing() || d.spawnedFor == d.state.Iteration {
		return events
	}

	specs := d.gen.ForState(d.state)
	d.state = game.Reduce(d.state, game.SpawnTiles{Tiles: specs})
	d.spawnedFor = d.state.Iteration
	d.markBaseline()

	d.logger.Debug("round started",
		"iteration", d.state.Iteration,
		"board", d.state.BoardSize,
		"tiles", len(specs),
		"limit", d.state.TimeLimit)

	return append(events, RoundStarted{
		Iteration: d.state.Iteration,
		BoardSize: d.state.BoardSize,
		Tiles:     len(specs),
		TimeLimit: d.state.TimeLimit,
	})
}

// markBaseline starts charging the countdown from now.
func (d *Driver) markBaseline() {
	d.lastTick = d.clock.Now()
	d.hasBaseline = true
}

func (d *Driver) resetGuards() {
	d.spawnedFor = 0
	d.hasBaseline = false
	d.clearPending = false
	d.clearedAt = time.Time{}
	d.paused = false
}
