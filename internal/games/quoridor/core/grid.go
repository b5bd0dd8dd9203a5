package core

// Grid is the board model: tile occupancy and wall-gap occupancy for an
// N×N board. It knows nothing about players or turns.
//
// Horizontal gaps are stored row-major as y*N + x (N columns, N-1 rows of
// gaps); vertical gaps as y*(N-1) + x (N-1 columns, N rows). Wall centres
// are stored on the (N-1)×(N-1) lattice of interior intersections.
type Grid struct {
	size    int
	tiles   []bool
	hgaps   []bool
	vgaps   []bool
	centers []centerMark

	onCleared []func()
}

// centerMark records which orientation's wall is centred on an intersection.
type centerMark uint8

const (
	centerNone centerMark = iota
	centerHorizontal
	centerVertical
)

func markFor(o Orientation) centerMark {
	if o == Horizontal {
		return centerHorizontal
	}
	return centerVertical
}

// NewGrid creates an empty board of the given size.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, NewError(CodeInvalidConfig, "grid size must be positive, got %d", size)
	}
	g := &Grid{}
	g.allocate(size)
	return g, nil
}

// allocate creates the underlying storage for the given size.
func (g *Grid) allocate(size int) {
	g.size = size
	inner := size - 1
	g.tiles = make([]bool, size*size)
	g.hgaps = make([]bool, size*inner)
	g.vgaps = make([]bool, inner*size)
	g.centers = make([]centerMark, inner*inner)
}

// Size returns the board dimension N.
func (g *Grid) Size() int {
	return g.size
}

// IsWithinBounds returns true if the tile coordinate is on the board.
func (g *Grid) IsWithinBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// SetTileOccupied marks a tile as holding a pawn or not.
func (g *Grid) SetTileOccupied(c Coord, occupied bool) error {
	if !g.IsWithinBounds(c) {
		return NewError(CodeOutOfBounds, "tile %v outside %dx%d board", c, g.size, g.size)
	}
	g.tiles[c.Y*g.size+c.X] = occupied
	return nil
}

// IsTileOccupied reports whether a pawn stands on the tile.
func (g *Grid) IsTileOccupied(c Coord) (bool, error) {
	if !g.IsWithinBounds(c) {
		return false, NewError(CodeOutOfBounds, "tile %v outside %dx%d board", c, g.size, g.size)
	}
	return g.tiles[c.Y*g.size+c.X], nil
}

// gapIndex returns the storage index of a gap segment, or -1 if the
// segment does not exist on this board.
func (g *Grid) gapIndex(o Orientation, x, y int) int {
	switch o {
	case Horizontal:
		if x < 0 || x >= g.size || y < 0 || y >= g.size-1 {
			return -1
		}
		return y*g.size + x
	case Vertical:
		if x < 0 || x >= g.size-1 || y < 0 || y >= g.size {
			return -1
		}
		return y*(g.size-1) + x
	}
	return -1
}

func (g *Grid) gaps(o Orientation) []bool {
	if o == Horizontal {
		return g.hgaps
	}
	return g.vgaps
}

// SetWallGap sets a single gap segment. It does not record a wall centre;
// use PutWall to commit whole walls. Two raw segments meeting at an
// intersection still block a crossing wall there, see SpansIntersection.
func (g *Grid) SetWallGap(o Orientation, x, y int, occupied bool) error {
	i := g.gapIndex(o, x, y)
	if i < 0 {
		return NewError(CodeOutOfBounds, "%s gap (%d,%d) outside %dx%d board", o, x, y, g.size, g.size)
	}
	g.gaps(o)[i] = occupied
	return nil
}

// IsWallGapOccupied reports whether a wall covers the gap segment.
func (g *Grid) IsWallGapOccupied(o Orientation, x, y int) (bool, error) {
	i := g.gapIndex(o, x, y)
	if i < 0 {
		return false, NewError(CodeOutOfBounds, "%s gap (%d,%d) outside %dx%d board", o, x, y, g.size, g.size)
	}
	return g.gaps(o)[i], nil
}

// segmentOccupied is IsWallGapOccupied without the error, for callers that
// already checked bounds.
func (g *Grid) segmentOccupied(s Segment) bool {
	i := g.gapIndex(s.Orientation, s.X, s.Y)
	return i >= 0 && g.gaps(s.Orientation)[i]
}

// WallAnchorInBounds reports whether the wall's centre is an interior
// intersection, which is exactly when both its segments exist.
func (g *Grid) WallAnchorInBounds(w Wall) bool {
	return w.X >= 0 && w.X < g.size-1 && w.Y >= 0 && w.Y < g.size-1
}

// WallCenteredAt returns the orientation of the wall centred on the
// intersection (x, y), if any.
func (g *Grid) WallCenteredAt(x, y int) (Orientation, bool) {
	if x < 0 || x >= g.size-1 || y < 0 || y >= g.size-1 {
		return 0, false
	}
	switch g.centers[y*(g.size-1)+x] {
	case centerHorizontal:
		return Horizontal, true
	case centerVertical:
		return Vertical, true
	}
	return 0, false
}

// SpansIntersection reports whether a barrier of orientation o runs
// through the intersection (x, y): either a wall of that orientation is
// centred there, or both gap segments touching the intersection along o
// are covered and neither is the end of a wall centred on a neighbouring
// intersection.
func (g *Grid) SpansIntersection(o Orientation, x, y int) bool {
	if centred, ok := g.WallCenteredAt(x, y); ok {
		return centred == o
	}
	if x < 0 || x >= g.size-1 || y < 0 || y >= g.size-1 {
		return false
	}
	w := W(o, x, y)
	for _, s := range w.Segments() {
		if !g.segmentOccupied(s) {
			return false
		}
	}
	// Neighbouring centres along o whose walls end at this intersection.
	before, after := W(o, x-1, y), W(o, x+1, y)
	if o == Vertical {
		before, after = W(o, x, y-1), W(o, x, y+1)
	}
	for _, n := range []Wall{before, after} {
		if centred, ok := g.WallCenteredAt(n.X, n.Y); ok && centred == o {
			return false
		}
	}
	return true
}

// PutWall commits a wall's two segments and its centre. It checks bounds
// only; legality is the validator's job.
func (g *Grid) PutWall(w Wall) error {
	if !g.WallAnchorInBounds(w) {
		return NewError(CodeOutOfBounds, "%v outside %dx%d board", w, g.size, g.size)
	}
	for _, s := range w.Segments() {
		g.gaps(s.Orientation)[g.gapIndex(s.Orientation, s.X, s.Y)] = true
	}
	g.centers[w.Y*(g.size-1)+w.X] = markFor(w.Orientation)
	return nil
}

// Walls returns every committed wall, ordered by row then column.
func (g *Grid) Walls() []Wall {
	walls := make([]Wall, 0)
	inner := g.size - 1
	for y := 0; y < inner; y++ {
		for x := 0; x < inner; x++ {
			if o, ok := g.WallCenteredAt(x, y); ok {
				walls = append(walls, W(o, x, y))
			}
		}
	}
	return walls
}

// CanStep reports whether a pawn on from may step one tile in direction d
// as far as the board is concerned: the target is on the board and no wall
// covers the gap in between. Pawn occupancy is not considered.
func (g *Grid) CanStep(from Coord, d Dir) bool {
	if !g.IsWithinBounds(from) || !g.IsWithinBounds(from.Step(d)) {
		return false
	}
	switch d {
	case DirDown:
		return !g.hgaps[from.Y*g.size+from.X]
	case DirUp:
		return !g.hgaps[(from.Y-1)*g.size+from.X]
	case DirRight:
		return !g.vgaps[from.Y*(g.size-1)+from.X]
	case DirLeft:
		return !g.vgaps[from.Y*(g.size-1)+from.X-1]
	}
	return false
}

// OnCleared registers a handler run after every ClearAll or Resize.
func (g *Grid) OnCleared(fn func()) {
	g.onCleared = append(g.onCleared, fn)
}

// ClearAll resets every tile and gap to unoccupied and raises the
// grid-cleared notification.
func (g *Grid) ClearAll() {
	clear(g.tiles)
	clear(g.hgaps)
	clear(g.vgaps)
	clear(g.centers)
	g.notifyCleared()
}

// Resize reconfigures the board to a new size. All prior occupancy and
// wall state is discarded; callers must re-seed pawns afterwards.
func (g *Grid) Resize(size int) error {
	if size <= 0 {
		return NewError(CodeInvalidConfig, "grid size must be positive, got %d", size)
	}
	g.allocate(size)
	g.notifyCleared()
	return nil
}

func (g *Grid) notifyCleared() {
	for _, fn := range g.onCleared {
		fn()
	}
}

// Clone returns a deep copy of the board state. Cleared handlers are not
// carried over.
func (g *Grid) Clone() *Grid {
	return &Grid{
		size:    g.size,
		tiles:   append([]bool(nil), g.tiles...),
		hgaps:   append([]bool(nil), g.hgaps...),
		vgaps:   append([]bool(nil), g.vgaps...),
		centers: append([]centerMark(nil), g.centers...),
	}
}

// WallCount returns the number of committed walls.
func (g *Grid) WallCount() int {
	n := 0
	for _, c := range g.centers {
		if c != centerNone {
			n++
		}
	}
	return n
}
