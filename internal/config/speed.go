package config

import (
	"fmt"
	"time"
)

// SpeedConfig defines the gravity progression: the piece falls one row every
// Interval(level), starting at Start and shrinking by Step per level down to Max.
// Smaller intervals are faster.
type SpeedConfig struct {
	Start         time.Duration `yaml:"start"`
	Max           time.Duration `yaml:"max"`
	Step          time.Duration `yaml:"step"`
	LinesPerLevel int           `yaml:"lines_per_level"`
}

// Level returns the level reached after clearing the given number of lines.
func (s SpeedConfig) Level(lines int) int {
	if s.LinesPerLevel <= 0 {
		return 0
	}
	return lines / s.LinesPerLevel
}

// Interval returns the time between gravity steps at the given level.
func (s SpeedConfig) Interval(level int) time.Duration {
	return max(s.Max, s.Start-time.Duration(level)*s.Step)
}

// Validate checks the speed curve.
func (s SpeedConfig) Validate() error {
	if s.Start <= 0 || s.Max <= 0 {
		return fmt.Errorf("config: speeds must be positive (start %s, max %s)", s.Start, s.Max)
	}
	if s.Max > s.Start {
		return fmt.Errorf("config: max speed interval %s is slower than start %s", s.Max, s.Start)
	}
	if s.Step < 0 {
		return fmt.Errorf("config: negative speed step %s", s.Step)
	}
	if s.LinesPerLevel <= 0 {
		return fmt.Errorf("config: lines_per_level must be positive, got %d", s.LinesPerLevel)
	}
	return nil
}
