package core

// The wall validator is a set of stateless checks over a Grid. Checks run
// cheapest first and stop at the first failure:
//
//  1. bounds: the anchor addresses two existing segments
//  2. overlap: neither segment is already covered
//  3. crossing: no perpendicular barrier runs through the same intersection
//  4. path preservation: on a scratch copy with the wall placed, every
//     pawn still reaches its goal
//
// The wall budget is a player attribute and is checked by the caller.

// CheckWallStructure runs the bounds, overlap and crossing checks.
func CheckWallStructure(g *Grid, w Wall) error {
	if w.Orientation != Horizontal && w.Orientation != Vertical {
		return NewError(CodeOutOfBounds, "unknown wall orientation %d", w.Orientation)
	}
	if !g.WallAnchorInBounds(w) {
		return NewError(CodeOutOfBounds, "%v outside %dx%d board", w, g.Size(), g.Size())
	}
	for _, s := range w.Segments() {
		if g.segmentOccupied(s) {
			return NewError(CodeOverlap, "%v overlaps existing wall at gap %v", w, s)
		}
	}
	if g.SpansIntersection(w.Orientation.Other(), w.X, w.Y) {
		return NewError(CodeWouldCrossWall, "%v crosses %v", w, w.Crossing())
	}
	return nil
}

// CheckWall is a dry run of a placement: structure plus path preservation.
// Neither the grid nor the pawns are modified.
func CheckWall(g *Grid, w Wall, pawns []Pawn) error {
	if err := CheckWallStructure(g, w); err != nil {
		return err
	}
	return checkPaths(g, w, pawns)
}

// CanPlaceWall is CheckWall as a boolean.
func CanPlaceWall(g *Grid, w Wall, pawns []Pawn) bool {
	return CheckWall(g, w, pawns) == nil
}

// PlaceWall re-validates the wall and commits it to g. On rejection g is
// left untouched.
func PlaceWall(g *Grid, w Wall, pawns []Pawn) error {
	if err := CheckWall(g, w, pawns); err != nil {
		return err
	}
	return g.PutWall(w)
}

// checkPaths simulates the placement on a scratch copy and runs a path
// search for every pawn.
func checkPaths(g *Grid, w Wall, pawns []Pawn) error {
	scratch := g.Clone()
	if err := scratch.PutWall(w); err != nil {
		return err
	}
	for _, p := range pawns {
		if !PathExists(scratch, p.Position, p.Goal) {
			err := NewError(CodeWouldBlockPath, "%v would leave pawn %d without a path to %v", w, p.Index, p.Goal)
			err.Pawn = p.Index
			return err
		}
	}
	return nil
}
