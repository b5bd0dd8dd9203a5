package quoridor

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-quoridor/internal/config"
	"github.com/vovakirdan/tui-quoridor/internal/games/quoridor/core"
)

// ConfigFromSettings converts loaded YAML settings into a game Config.
func ConfigFromSettings(s config.QuoridorConfig) (Config, error) {
	cfg := Config{
		Size:      s.Board.Size,
		Players:   s.Players.Count,
		WallsEach: s.Players.WallsEach,
		Debug:     s.Rules.Debug,
	}
	for i, p := range s.Players.Layout {
		kind, ok := core.ParseGoalKind(strings.ToLower(p.Goal.Kind))
		if !ok {
			return Config{}, fmt.Errorf("players.layout[%d]: unknown goal kind %q", i, p.Goal.Kind)
		}
		goal := core.GoalSpec{Kind: kind, Index: p.Goal.Index}
		if kind == core.GoalTile {
			goal = core.TileGoal(core.C(p.Goal.X, p.Goal.Y))
		}
		cfg.Layout = append(cfg.Layout, core.PawnSpec{
			Start: core.C(p.Start.X, p.Start.Y),
			Goal:  goal,
		})
	}
	return cfg, nil
}
