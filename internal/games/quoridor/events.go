package quoridor

import "github.com/vovakirdan/tui-quoridor/internal/games/quoridor/core"

// Event is a notification from a Controller to its subscribers.
type Event interface {
	event()
}

// TileOccupancyChanged is sent when a pawn leaves or enters a tile.
type TileOccupancyChanged struct {
	Position core.Coord
	Occupied bool
}

func (TileOccupancyChanged) event() {}

// WallPlaced is sent after a wall has been committed.
type WallPlaced struct {
	Wall   core.Wall
	Player int
}

func (WallPlaced) event() {}

// GridCleared is sent after the board was cleared or resized and the
// pawns were re-seeded at their starts.
type GridCleared struct {
	Size int
}

func (GridCleared) event() {}

// TurnChanged is sent whenever the turn state changes.
type TurnChanged struct {
	Previous int
	Current  int
	State    core.TurnState
}

func (TurnChanged) event() {}

// GameWon is sent once when a pawn reaches its goal.
type GameWon struct {
	Winner   int
	Position core.Coord
}

func (GameWon) event() {}

// Listener receives controller events. Listeners must not call back into
// the controller's commands.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}
