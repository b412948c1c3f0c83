// Package config loads the YAML settings of the jewels game and maps board
// presets onto them.
package config

import (
	"errors"
	"fmt"
)

// JewelsConfig contains all configuration for the jewels game.
type JewelsConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the board geometry and palette.
type BoardConfig struct {
	Size        int  `yaml:"size"`
	Colors      int  `yaml:"colors"`
	StableStart bool `yaml:"stable_start"`
}

// TimingConfig defines cascade pacing in milliseconds. Zero means the next
// step happens on the next tick.
type TimingConfig struct {
	StepDelayMS   int `yaml:"step_delay_ms"`
	RevertDelayMS int `yaml:"revert_delay_ms"`
}

// Board limits.
const (
	MinBoardSize = 3
	MaxBoardSize = 16
	MinColors    = 3
	MaxColors    = 7
	MaxDelayMS   = 5000
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the values are playable.
func (c JewelsConfig) Validate() error {
	switch {
	case c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize:
		return fmt.Errorf("config: board.size %d not in [%d, %d]: %w",
			c.Board.Size, MinBoardSize, MaxBoardSize, ErrInvalidConfig)
	case c.Board.Colors < MinColors || c.Board.Colors > MaxColors:
		return fmt.Errorf("config: board.colors %d not in [%d, %d]: %w",
			c.Board.Colors, MinColors, MaxColors, ErrInvalidConfig)
	case c.Timing.StepDelayMS < 0 || c.Timing.StepDelayMS > MaxDelayMS:
		return fmt.Errorf("config: timing.step_delay_ms %d not in [0, %d]: %w",
			c.Timing.StepDelayMS, MaxDelayMS, ErrInvalidConfig)
	case c.Timing.RevertDelayMS < 0 || c.Timing.RevertDelayMS > MaxDelayMS:
		return fmt.Errorf("config: timing.revert_delay_ms %d not in [0, %d]: %w",
			c.Timing.RevertDelayMS, MaxDelayMS, ErrInvalidConfig)
	}
	return nil
}
