package quoridor

import (
	platformcore "github.com/vovakirdan/tui-quoridor/internal/core"
	"github.com/vovakirdan/tui-quoridor/internal/games/quoridor/core"
)

// Board geometry in screen cells. Each tile is tileW characters wide and
// one row high; gaps take one column or row between tiles.
const (
	tileW = 3
	cellW = tileW + 1
	cellH = 2
)

// Board glyphs.
const (
	glyphEmpty   = '·'
	glyphTarget  = '•'
	glyphLattice = '+'
	glyphWallH   = '━'
	glyphWallV   = '┃'
)

// Colors used on the board.
const (
	colorFrame   = platformcore.ColorGray
	colorWall    = platformcore.ColorOrange
	colorTarget  = platformcore.ColorGreen
	colorCursor  = platformcore.ColorWhite
	colorLegal   = platformcore.ColorBrightGreen
	colorIllegal = platformcore.ColorBrightRed
)

// PawnGlyph returns the letter drawn for pawn i.
func PawnGlyph(i int) rune {
	return rune('A' + i)
}

// BoardSize returns the screen footprint of an n×n board including its frame.
func BoardSize(n int) (w, h int) {
	return n*cellW + 1, n*cellH + 1
}

// Overlay is transient UI state drawn on top of the board.
type Overlay struct {
	Cursor     core.Coord
	ShowCursor bool
	// Targets are highlighted tiles, such as the selected pawn's moves.
	Targets []core.Coord
	// Preview is a wall to draw before it is committed.
	Preview      *core.Wall
	PreviewLegal bool
}

// boardPainter maps board coordinates to screen cells.
type boardPainter struct {
	dst    *platformcore.Screen
	ox, oy int
}

func (p boardPainter) tile(c core.Coord) (x, y int) {
	return p.ox + c.X*cellW + 1, p.oy + c.Y*cellH + 1
}

// gap returns the first screen cell of a gap segment and whether it runs
// horizontally across tileW cells.
func (p boardPainter) gap(s core.Segment) (x, y int) {
	if s.Orientation == core.Horizontal {
		return p.ox + s.X*cellW + 1, p.oy + (s.Y+1)*cellH
	}
	return p.ox + (s.X+1)*cellW, p.oy + s.Y*cellH + 1
}

func (p boardPainter) center(x, y int) (sx, sy int) {
	return p.ox + (x+1)*cellW, p.oy + (y+1)*cellH
}

func (p boardPainter) segment(s core.Segment, color platformcore.Color) {
	x, y := p.gap(s)
	if s.Orientation == core.Horizontal {
		for i := 0; i < tileW; i++ {
			p.dst.SetCell(x+i, y, glyphWallH, color)
		}
		return
	}
	p.dst.SetCell(x, y, glyphWallV, color)
}

func (p boardPainter) wall(w core.Wall, color platformcore.Color) {
	for _, s := range w.Segments() {
		p.segment(s, color)
	}
	glyph := glyphWallH
	if w.Orientation == core.Vertical {
		glyph = glyphWallV
	}
	x, y := p.center(w.X, w.Y)
	p.dst.SetCell(x, y, glyph, color)
}

// RenderBoard draws the board with its frame at (ox, oy).
func RenderBoard(dst *platformcore.Screen, ox, oy int, c *Controller, ov Overlay) {
	n := c.Size()
	w, h := BoardSize(n)
	p := boardPainter{dst: dst, ox: ox, oy: oy}

	dst.DrawBox(platformcore.NewRect(ox, oy, w, h), colorFrame)

	// Lattice points between tiles.
	for y := 0; y < n-1; y++ {
		for x := 0; x < n-1; x++ {
			sx, sy := p.center(x, y)
			dst.SetCell(sx, sy, glyphLattice, colorFrame)
		}
	}

	// Tiles.
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			sx, sy := p.tile(core.C(x, y))
			dst.SetCell(sx+1, sy, glyphEmpty, colorFrame)
		}
	}
	for _, t := range ov.Targets {
		sx, sy := p.tile(t)
		dst.SetCell(sx+1, sy, glyphTarget, colorTarget)
	}
	for _, pawn := range c.Pawns() {
		sx, sy := p.tile(pawn.Position)
		dst.SetCell(sx+1, sy, PawnGlyph(pawn.Index), platformcore.PawnColor(pawn.Index))
	}

	// Walls. Segments are drawn from the gap flags so that gaps set
	// directly on the grid show up too.
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			for _, o := range []core.Orientation{core.Horizontal, core.Vertical} {
				if occupied, err := c.IsWallGapOccupied(o, x, y); err == nil && occupied {
					p.segment(core.Segment{Orientation: o, X: x, Y: y}, colorWall)
				}
			}
		}
	}
	for _, wall := range c.Walls() {
		p.wall(wall, colorWall)
	}

	if ov.Preview != nil {
		color := colorIllegal
		if ov.PreviewLegal {
			color = colorLegal
		}
		p.wall(*ov.Preview, color)
	}

	if ov.ShowCursor {
		sx, sy := p.tile(ov.Cursor)
		dst.SetCell(sx, sy, '[', colorCursor)
		dst.SetCell(sx+2, sy, ']', colorCursor)
	}
}

// RenderASCII draws the board alone and returns it as plain text.
func RenderASCII(c *Controller) string {
	w, h := BoardSize(c.Size())
	screen := platformcore.NewScreen(w, h)
	RenderBoard(screen, 0, 0, c, Overlay{})
	return screen.String()
}
