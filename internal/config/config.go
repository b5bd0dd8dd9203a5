// Package config provides YAML-based game configuration loading and
// presets for Quoridor.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Board size limits accepted by Validate.
const (
	MinBoardSize = 3
	MaxBoardSize = 25
)

// QuoridorConfig contains all configuration for a Quoridor game.
type QuoridorConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Players PlayersConfig `yaml:"players"`
	Rules   RulesConfig   `yaml:"rules"`
	Logging LoggingConfig `yaml:"logging"`
}

// BoardConfig defines the board.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// PlayersConfig defines how many pawns play and their resources.
type PlayersConfig struct {
	Count     int `yaml:"count"`      // 2 or 4, ignored when Layout is set
	WallsEach int `yaml:"walls_each"` // Wall budget per player
	// Layout places pawns explicitly instead of the standard layout.
	Layout []PawnLayout `yaml:"layout,omitempty"`
}

// PawnLayout is one explicitly placed pawn.
type PawnLayout struct {
	Start Point      `yaml:"start"`
	Goal  GoalConfig `yaml:"goal"`
}

// Point is a tile coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// GoalConfig is a pawn's win condition.
type GoalConfig struct {
	Kind  string `yaml:"kind"`            // "tile", "row" or "column"
	X     int    `yaml:"x,omitempty"`     // tile only
	Y     int    `yaml:"y,omitempty"`     // tile only
	Index int    `yaml:"index,omitempty"` // row or column number
}

// RulesConfig toggles rule variations.
type RulesConfig struct {
	Debug bool `yaml:"debug"` // Any player may act on any turn
}

// LoggingConfig defines where game logs go.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty discards logs during interactive play
}

// PlayerCount returns the number of pawns the config describes.
func (c QuoridorConfig) PlayerCount() int {
	if len(c.Players.Layout) > 0 {
		return len(c.Players.Layout)
	}
	return c.Players.Count
}

// Validate rejects configurations no game can be built from.
func (c QuoridorConfig) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return fmt.Errorf("board.size must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, c.Board.Size)
	}
	if len(c.Players.Layout) == 0 {
		if c.Players.Count != 2 && c.Players.Count != 4 {
			return fmt.Errorf("players.count must be 2 or 4, got %d", c.Players.Count)
		}
	} else if n := len(c.Players.Layout); n < 2 || n > 4 {
		return fmt.Errorf("players.layout must list 2 to 4 pawns, got %d", n)
	}
	for i, p := range c.Players.Layout {
		switch strings.ToLower(p.Goal.Kind) {
		case "tile", "row", "column", "col":
		default:
			return fmt.Errorf("players.layout[%d].goal.kind %q is not tile, row or column", i, p.Goal.Kind)
		}
	}
	if c.Players.WallsEach < 0 {
		return fmt.Errorf("players.walls_each must not be negative, got %d", c.Players.WallsEach)
	}
	if c.Logging.Level != "" {
		if _, err := log.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	return nil
}
