package core

import "time"

// defaultTickRate is the timer resolution used when none is configured.
const defaultTickRate = 60

// RuntimeConfig is what the terminal host needs to run a session.
type RuntimeConfig struct {
	ScreenW  int   // Initial terminal width
	ScreenH  int   // Initial terminal height
	TickRate int   // Timer ticks per second
	Seed     int64 // Tile placement seed, 0 picks one from the wall clock
}

// DefaultConfig returns the settings for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: defaultTickRate,
	}
}

// TickInterval returns the delay between two timer ticks. A non-positive
// rate falls back to the default.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}
