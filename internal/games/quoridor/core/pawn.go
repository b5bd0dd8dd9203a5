package core

import "fmt"

// Pawn is a player's piece and the per-player resources attached to it.
type Pawn struct {
	Index          int
	Position       Coord
	Start          Coord
	Goal           GoalSpec
	WallsRemaining int
	// Active is true for the pawn that currently holds turn ownership.
	Active bool
}

// Reached reports whether the pawn stands on one of its goal tiles.
func (p Pawn) Reached() bool {
	return p.Goal.Reached(p.Position)
}

// String returns a string representation of the pawn.
func (p Pawn) String() string {
	return fmt.Sprintf("pawn %d at %v (goal %v, %d walls)", p.Index, p.Position, p.Goal, p.WallsRemaining)
}

// PawnSpec is the static part of a pawn: where it starts and where it wins.
type PawnSpec struct {
	Start Coord
	Goal  GoalSpec
}

// Supported pawn counts.
const (
	MinPawns = 2
	MaxPawns = 4
)

// DefaultLayout returns the standard layout for the given pawn count:
// two pawns face each other across the rows, four pawns also face each
// other across the columns.
func DefaultLayout(size, count int) ([]PawnSpec, error) {
	if size < 3 {
		return nil, NewError(CodeInvalidConfig, "board size %d too small for a layout", size)
	}
	mid := size / 2
	last := size - 1

	switch count {
	case 2:
		return []PawnSpec{
			{Start: C(mid, 0), Goal: RowGoal(last)},
			{Start: C(mid, last), Goal: RowGoal(0)},
		}, nil
	case 4:
		return []PawnSpec{
			{Start: C(mid, 0), Goal: RowGoal(last)},
			{Start: C(mid, last), Goal: RowGoal(0)},
			{Start: C(0, mid), Goal: ColumnGoal(last)},
			{Start: C(last, mid), Goal: ColumnGoal(0)},
		}, nil
	default:
		return nil, NewError(CodeInvalidConfig, "no layout for %d pawns (supported: 2, 4)", count)
	}
}

// ValidateLayout checks that every pawn starts on the board on its own
// tile, has a non-empty goal on the board, and does not start on its goal.
func ValidateLayout(size int, specs []PawnSpec) error {
	if len(specs) < MinPawns || len(specs) > MaxPawns {
		return NewError(CodeInvalidConfig, "need %d to %d pawns, got %d", MinPawns, MaxPawns, len(specs))
	}
	seen := make(map[Coord]int, len(specs))
	for i, s := range specs {
		if !inBounds(s.Start, size) {
			return NewError(CodeInvalidConfig, "pawn %d starts off the board at %v", i, s.Start)
		}
		if other, dup := seen[s.Start]; dup {
			return NewError(CodeInvalidConfig, "pawns %d and %d share start %v", other, i, s.Start)
		}
		seen[s.Start] = i
		if len(s.Goal.Tiles(size)) == 0 {
			return NewError(CodeInvalidConfig, "pawn %d goal %v has no tiles on a %dx%d board", i, s.Goal, size, size)
		}
		if s.Goal.Reached(s.Start) {
			return NewError(CodeInvalidConfig, "pawn %d starts on its goal %v", i, s.Goal)
		}
	}
	return nil
}

// NewPawns builds pawns at their start tiles with the given wall budget.
func NewPawns(specs []PawnSpec, walls int) []Pawn {
	pawns := make([]Pawn, len(specs))
	for i, s := range specs {
		pawns[i] = Pawn{
			Index:          i,
			Position:       s.Start,
			Start:          s.Start,
			Goal:           s.Goal,
			WallsRemaining: walls,
		}
	}
	return pawns
}
