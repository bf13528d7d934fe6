// Package config provides YAML-based configuration loading for the game:
// board geometry, the gravity speed curve, input polling and display options.
package config

import (
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for a game session.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InputConfig controls how long the game loop waits for a command before
// running a gravity check.
type InputConfig struct {
	PollTimeout time.Duration `yaml:"poll_timeout"`
}

// DisplayConfig defines rendering options.
type DisplayConfig struct {
	RandomColors bool   `yaml:"random_colors"`
	Backend      string `yaml:"backend"` // "bubbletea" or "tcell"
	Ghost        bool   `yaml:"ghost"`
}

// LogConfig defines where diagnostics go. An empty file discards them.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Supported display backends.
const (
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

// Limits enforced by Validate.
const (
	MinBoardWidth  = 8
	MinBoardHeight = 4
	MinPollTimeout = 50 * time.Millisecond
	MaxPollTimeout = time.Second
)

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < MinBoardWidth {
		return fmt.Errorf("config: board width %d is below the minimum of %d", c.Board.Width, MinBoardWidth)
	}
	if c.Board.Height < MinBoardHeight {
		return fmt.Errorf("config: board height %d is below the minimum of %d", c.Board.Height, MinBoardHeight)
	}
	if err := c.Speed.Validate(); err != nil {
		return err
	}
	if c.Input.PollTimeout < MinPollTimeout || c.Input.PollTimeout > MaxPollTimeout {
		return fmt.Errorf("config: poll timeout %s outside [%s, %s]", c.Input.PollTimeout, MinPollTimeout, MaxPollTimeout)
	}
	switch c.Display.Backend {
	case BackendBubbleTea, BackendTcell:
	default:
		return fmt.Errorf("config: unknown backend %q", c.Display.Backend)
	}
	return nil
}
