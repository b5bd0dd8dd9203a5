package config

import (
	"fmt"
	"strings"
)

// Preset represents a named game setup.
type Preset string

const (
	PresetClassic Preset = "classic" // 9x9, two players, 10 walls each
	PresetFour    Preset = "four"    // 9x9, four players, 5 walls each
	PresetSmall   Preset = "small"   // 5x5, two players, 3 walls each
)

// Presets lists every preset in display order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetFour, PresetSmall}
}

// ParsePreset returns the preset with the given name.
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown preset %q (want classic, four or small)", name)
}

// Description returns a one-line summary of the preset.
func (p Preset) Description() string {
	switch p {
	case PresetClassic:
		return "9x9 board, 2 players, 10 walls each"
	case PresetFour:
		return "9x9 board, 4 players, 5 walls each"
	case PresetSmall:
		return "5x5 board, 2 players, 3 walls each"
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a preset. An explicit layout is
// dropped since it may not fit the preset's board.
func ApplyPreset(cfg *QuoridorConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Board.Size = 9
		cfg.Players.Count = 2
		cfg.Players.WallsEach = 10
	case PresetFour:
		cfg.Board.Size = 9
		cfg.Players.Count = 4
		cfg.Players.WallsEach = 5
	case PresetSmall:
		cfg.Board.Size = 5
		cfg.Players.Count = 2
		cfg.Players.WallsEach = 3
	default:
		return
	}
	cfg.Players.Layout = nil
}
