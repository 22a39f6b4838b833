package config

import (
	_ "embed"
)

//go:embed defaults/funclicker.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It matches the embedded
// defaults/funclicker.yaml.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			TickRate:     60,
			MinCellWidth: 4,
		},
		Timer: TimerConfig{
			WarnAt:   1.5,
			DangerAt: 1.0,
		},
		Round: RoundConfig{
			ClearDelayMS: 100,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
