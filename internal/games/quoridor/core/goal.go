package core

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Goal is anything that decides whether a tile satisfies a win condition.
type Goal interface {
	Reached(c Coord) bool
}

// GoalKind selects how a GoalSpec is interpreted.
type GoalKind uint8

const (
	GoalTile   GoalKind = iota // A single tile
	GoalRow                    // Any tile with Y == Index
	GoalColumn                 // Any tile with X == Index
)

// String returns the string representation of a goal kind.
func (k GoalKind) String() string {
	switch k {
	case GoalTile:
		return "tile"
	case GoalRow:
		return "row"
	case GoalColumn:
		return "column"
	default:
		return "unknown"
	}
}

// ParseGoalKind accepts "tile", "row" or "column".
func ParseGoalKind(s string) (GoalKind, bool) {
	switch s {
	case "tile":
		return GoalTile, true
	case "row":
		return GoalRow, true
	case "column", "col":
		return GoalColumn, true
	default:
		return 0, false
	}
}

// GoalSpec is a pawn's win condition: a tile, a whole row or a whole column.
type GoalSpec struct {
	Kind  GoalKind
	Tile  Coord // GoalTile only
	Index int   // Row Y for GoalRow, column X for GoalColumn
}

// TileGoal returns a goal satisfied only by c.
func TileGoal(c Coord) GoalSpec {
	return GoalSpec{Kind: GoalTile, Tile: c}
}

// RowGoal returns a goal satisfied by any tile in row y.
func RowGoal(y int) GoalSpec {
	return GoalSpec{Kind: GoalRow, Index: y}
}

// ColumnGoal returns a goal satisfied by any tile in column x.
func ColumnGoal(x int) GoalSpec {
	return GoalSpec{Kind: GoalColumn, Index: x}
}

// Reached implements Goal.
func (g GoalSpec) Reached(c Coord) bool {
	switch g.Kind {
	case GoalTile:
		return c == g.Tile
	case GoalRow:
		return c.Y == g.Index
	case GoalColumn:
		return c.X == g.Index
	}
	return false
}

// Tiles returns the goal tiles that lie on a board of the given size.
func (g GoalSpec) Tiles(size int) []Coord {
	tiles := make([]Coord, 0, size)
	switch g.Kind {
	case GoalTile:
		if inBounds(g.Tile, size) {
			tiles = append(tiles, g.Tile)
		}
	case GoalRow:
		if g.Index >= 0 && g.Index < size {
			for x := 0; x < size; x++ {
				tiles = append(tiles, C(x, g.Index))
			}
		}
	case GoalColumn:
		if g.Index >= 0 && g.Index < size {
			for y := 0; y < size; y++ {
				tiles = append(tiles, C(g.Index, y))
			}
		}
	}
	return tiles
}

// Set materialises the goal as a GoalSet for a board of the given size.
func (g GoalSpec) Set(size int) GoalSet {
	return NewGoalSet(g.Tiles(size)...)
}

// String returns a string representation of the goal.
func (g GoalSpec) String() string {
	if g.Kind == GoalTile {
		return fmt.Sprintf("tile %v", g.Tile)
	}
	return fmt.Sprintf("%s %d", g.Kind, g.Index)
}

// GoalSet is an explicit set of goal tiles.
type GoalSet struct {
	tiles mapset.Set[Coord]
}

// NewGoalSet creates a goal set from the given tiles.
func NewGoalSet(tiles ...Coord) GoalSet {
	s := mapset.New[Coord]()
	for _, c := range tiles {
		s.Put(c)
	}
	return GoalSet{tiles: s}
}

// Reached implements Goal.
func (s GoalSet) Reached(c Coord) bool {
	return s.tiles.Has(c)
}

// Size returns the number of tiles in the set.
func (s GoalSet) Size() int {
	return s.tiles.Size()
}

// Tiles returns the set's tiles ordered by row then column.
func (s GoalSet) Tiles() []Coord {
	tiles := make([]Coord, 0, s.Size())
	s.tiles.Each(func(c Coord) {
		tiles = append(tiles, c)
	})
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Y != tiles[j].Y {
			return tiles[i].Y < tiles[j].Y
		}
		return tiles[i].X < tiles[j].X
	})
	return tiles
}

func inBounds(c Coord, size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}
