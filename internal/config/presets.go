package config

import (
	"fmt"
	"strings"
)

// BoardPreset names a board variant.
type BoardPreset string

const (
	PresetClassic BoardPreset = "classic" // 8x8, 5 colors
	PresetSmall   BoardPreset = "small"   // 6x6, 4 colors
	PresetLarge   BoardPreset = "large"   // 10x10, 6 colors
)

// Presets lists the board presets in menu order.
func Presets() []BoardPreset {
	return []BoardPreset{PresetClassic, PresetSmall, PresetLarge}
}

// ParsePreset resolves a preset name, case-insensitively.
func ParsePreset(s string) (BoardPreset, error) {
	p := BoardPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q (want classic, small or large): %w", s, ErrInvalidConfig)
}

// BoardForPreset returns the board geometry of a preset. Unknown presets
// map to classic.
func BoardForPreset(p BoardPreset) (size, colors int) {
	switch p {
	case PresetSmall:
		return 6, 4
	case PresetLarge:
		return 10, 6
	default:
		return 8, 5
	}
}

// ApplyJewelsPreset overwrites the board geometry with the preset's.
// Timing and stable_start are left alone.
func ApplyJewelsPreset(cfg *JewelsConfig, p BoardPreset) {
	cfg.Board.Size, cfg.Board.Colors = BoardForPreset(p)
}

// Pace names a cascade timing preset.
type Pace string

const (
	PaceRelaxed Pace = "relaxed"
	PaceNormal  Pace = "normal"
	PaceFast    Pace = "fast"
	PaceInstant Pace = "instant"
)

// Paces lists the timing presets from slowest to fastest.
func Paces() []Pace {
	return []Pace{PaceRelaxed, PaceNormal, PaceFast, PaceInstant}
}

// ParsePace resolves a pace name, case-insensitively.
func ParsePace(s string) (Pace, error) {
	p := Pace(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Paces() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown pace %q (want relaxed, normal, fast or instant): %w", s, ErrInvalidConfig)
}

// TimingForPace returns the step and revert delays of a pace. Unknown paces
// map to normal.
func TimingForPace(p Pace) TimingConfig {
	switch p {
	case PaceRelaxed:
		return TimingConfig{StepDelayMS: 500, RevertDelayMS: 500}
	case PaceFast:
		return TimingConfig{StepDelayMS: 120, RevertDelayMS: 150}
	case PaceInstant:
		return TimingConfig{}
	default:
		return TimingConfig{StepDelayMS: 300, RevertDelayMS: 300}
	}
}

// ApplyPace overwrites the timing with the pace's delays.
func ApplyPace(cfg *JewelsConfig, p Pace) {
	cfg.Timing = TimingForPace(p)
}
