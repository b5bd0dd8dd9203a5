// Package core provides the rules engine for Quoridor: the board model,
// path search, wall legality and the turn state machine.
// This package is UI-agnostic and deterministic.
package core

// Dir represents an orthogonal step direction on the board.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Dirs lists every direction in exploration order.
var Dirs = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (row 0 is the top of the board).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Orientation is the axis a wall or gap segment lies along.
type Orientation uint8

const (
	// Horizontal segments separate a tile from the tile below it.
	Horizontal Orientation = iota
	// Vertical segments separate a tile from the tile to its right.
	Vertical
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Other returns the perpendicular orientation.
func (o Orientation) Other() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// ParseOrientation accepts "h", "horizontal", "v" or "vertical".
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "h", "H", "horizontal":
		return Horizontal, true
	case "v", "V", "vertical":
		return Vertical, true
	default:
		return 0, false
	}
}
