package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  15,
			Height: 30,
		},
		Speed: SpeedConfig{
			Start:         400 * time.Millisecond,
			Max:           50 * time.Millisecond,
			Step:          50 * time.Millisecond,
			LinesPerLevel: 10,
		},
		Input: InputConfig{
			PollTimeout: 300 * time.Millisecond,
		},
		Display: DisplayConfig{
			RandomColors: false,
			Backend:      BackendBubbleTea,
			Ghost:        true,
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
