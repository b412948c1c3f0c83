package config

import (
	_ "embed"
)

//go:embed defaults/jewels.yaml
var defaultJewelsYAML []byte

// DefaultJewelsConfig returns the built-in configuration: an 8x8 board with
// five colors and 300ms between cascade steps.
func DefaultJewelsConfig() JewelsConfig {
	return JewelsConfig{
		Board: BoardConfig{
			Size:        8,
			Colors:      5,
			StableStart: true,
		},
		Timing: TimingConfig{
			StepDelayMS:   300,
			RevertDelayMS: 300,
		},
	}
}
