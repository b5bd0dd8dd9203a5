package core

import "fmt"

// Segment addresses a single gap between two orthogonally adjacent tiles.
//
// A horizontal segment (x, y) separates tile (x, y) from (x, y+1).
// A vertical segment (x, y) separates tile (x, y) from (x+1, y).
type Segment struct {
	Orientation Orientation
	X, Y        int
}

// String returns a string representation of the segment.
func (s Segment) String() string {
	return fmt.Sprintf("%s(%d,%d)", s.Orientation.String()[:1], s.X, s.Y)
}

// Wall is a placed obstruction spanning two consecutive gap segments of the
// same orientation. X and Y address the intersection at the wall's centre,
// which is the corner shared by tiles (X,Y), (X+1,Y), (X,Y+1) and (X+1,Y+1).
type Wall struct {
	Orientation Orientation
	X, Y        int
}

// W is a convenience constructor for Wall.
func W(o Orientation, x, y int) Wall {
	return Wall{Orientation: o, X: x, Y: y}
}

// String returns a string representation of the wall.
func (w Wall) String() string {
	return fmt.Sprintf("%s wall at (%d,%d)", w.Orientation, w.X, w.Y)
}

// Segments returns the two gap segments the wall occupies.
func (w Wall) Segments() [2]Segment {
	if w.Orientation == Horizontal {
		return [2]Segment{
			{Orientation: Horizontal, X: w.X, Y: w.Y},
			{Orientation: Horizontal, X: w.X + 1, Y: w.Y},
		}
	}
	return [2]Segment{
		{Orientation: Vertical, X: w.X, Y: w.Y},
		{Orientation: Vertical, X: w.X, Y: w.Y + 1},
	}
}

// Crossing returns the wall of the opposite orientation sharing this wall's centre.
func (w Wall) Crossing() Wall {
	return Wall{Orientation: w.Orientation.Other(), X: w.X, Y: w.Y}
}
