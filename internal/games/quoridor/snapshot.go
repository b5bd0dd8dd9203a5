package quoridor

import "github.com/vovakirdan/tui-quoridor/internal/games/quoridor/core"

// PawnSnapshot is one pawn as captured by a Snapshot.
type PawnSnapshot struct {
	Index          int    `yaml:"index"`
	X              int    `yaml:"x"`
	Y              int    `yaml:"y"`
	Goal           string `yaml:"goal"`
	WallsRemaining int    `yaml:"walls_remaining"`
	Active         bool   `yaml:"active"`
}

// WallSnapshot is one wall as captured by a Snapshot.
type WallSnapshot struct {
	Orientation string `yaml:"orientation"`
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Size   int            `yaml:"size"`
	State  string         `yaml:"state"`
	Player int            `yaml:"player"` // Whose turn it is
	Actor  int            `yaml:"actor"`  // Who is mid-action
	Winner int            `yaml:"winner"` // -1 until the game is over
	Debug  bool           `yaml:"debug"`
	Pawns  []PawnSnapshot `yaml:"pawns"`
	Walls  []WallSnapshot `yaml:"walls"`
}

// Snapshot returns the current game snapshot.
func (c *Controller) Snapshot() Snapshot {
	state := c.turns.State()
	snap := Snapshot{
		Size:   c.grid.Size(),
		State:  state.Kind.String(),
		Player: state.Player,
		Actor:  state.Actor,
		Winner: state.Winner,
		Debug:  state.Debug,
		Pawns:  make([]PawnSnapshot, 0, len(c.pawns)),
		Walls:  make([]WallSnapshot, 0, c.grid.WallCount()),
	}
	for _, p := range c.pawns {
		snap.Pawns = append(snap.Pawns, PawnSnapshot{
			Index:          p.Index,
			X:              p.Position.X,
			Y:              p.Position.Y,
			Goal:           p.Goal.String(),
			WallsRemaining: p.WallsRemaining,
			Active:         p.Active,
		})
	}
	for _, w := range c.grid.Walls() {
		snap.Walls = append(snap.Walls, WallSnapshot{
			Orientation: w.Orientation.String(),
			X:           w.X,
			Y:           w.Y,
		})
	}
	return snap
}

// StateKind parses the snapshot's state back into a core.StateKind.
func (s Snapshot) StateKind() core.StateKind {
	for k := core.StateIdle; k <= core.StateGameOver; k++ {
		if k.String() == s.State {
			return k
		}
	}
	return core.StateIdle
}
