// Package config provides YAML-based configuration loading for FunClicker.
// Only presentation and pacing are configurable: board growth, time decay
// and tile counts are fixed by the game rules.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the complete FunClicker configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Timer   TimerConfig   `yaml:"timer"`
	Round   RoundConfig   `yaml:"round"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls the terminal renderer.
type DisplayConfig struct {
	TickRate     int `yaml:"tick_rate"`      // Timer ticks per second
	MinCellWidth int `yaml:"min_cell_width"` // Narrowest board cell in columns
}

// TimerConfig defines the timer color thresholds in seconds.
type TimerConfig struct {
	WarnAt   float64 `yaml:"warn_at"`
	DangerAt float64 `yaml:"danger_at"`
}

// RoundConfig defines pacing between rounds.
type RoundConfig struct {
	ClearDelayMS int `yaml:"clear_delay_ms"`
}

// LogConfig defines where and how much to log.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ClearDelay returns the round clear delay as a duration.
func (c Config) ClearDelay() time.Duration {
	return time.Duration(c.Round.ClearDelayMS) * time.Millisecond
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("config: display.tick_rate must be positive, got %d", c.Display.TickRate)
	}
	if c.Display.MinCellWidth < 2 {
		return fmt.Errorf("config: display.min_cell_width must be at least 2, got %d", c.Display.MinCellWidth)
	}
	if c.Round.ClearDelayMS < 0 {
		return fmt.Errorf("config: round.clear_delay_ms must not be negative, got %d", c.Round.ClearDelayMS)
	}
	if c.Timer.DangerAt < 0 {
		return fmt.Errorf("config: timer.danger_at must not be negative, got %v", c.Timer.DangerAt)
	}
	if c.Timer.WarnAt < c.Timer.DangerAt {
		return fmt.Errorf("config: timer.warn_at (%v) is below timer.danger_at (%v)", c.Timer.WarnAt, c.Timer.DangerAt)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log.level: %w", err)
		}
	}
	return nil
}
