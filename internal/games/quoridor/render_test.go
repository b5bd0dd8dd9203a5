package quoridor

import (
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-quoridor/internal/core"
	"github.com/vovakirdan/tui-quoridor/internal/games/quoridor/core"
)

func TestBoardSize(t *testing.T) {
	tests := []struct {
		n, w, h int
	}{
		{3, 13, 7},
		{5, 21, 11},
		{9, 37, 19},
	}
	for _, tt := range tests {
		if w, h := BoardSize(tt.n); w != tt.w || h != tt.h {
			t.Errorf("BoardSize(%d) = %dx%d, want %dx%d", tt.n, w, h, tt.w, tt.h)
		}
	}
}

func TestRenderASCII(t *testing.T) {
	c := newTestController(t, Config{Size: 3, Players: 2, WallsEach: 2})
	if err := c.PlaceWall(core.Horizontal, 0, 0); err != nil {
		t.Fatalf("PlaceWall: %v", err)
	}

	want := strings.Join([]string{
		"┌───────────┐",
		"│ ·   A   · │",
		"│━━━━━━━+   │",
		"│ ·   ·   · │",
		"│   +   +   │",
		"│ ·   B   · │",
		"└───────────┘",
	}, "\n")
	if got := RenderASCII(c); got != want {
		t.Errorf("RenderASCII:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderVerticalWall(t *testing.T) {
	c := newTestController(t, smallConfig())
	if err := c.PlaceWall(core.Vertical, 1, 2); err != nil {
		t.Fatalf("PlaceWall: %v", err)
	}
	w, h := BoardSize(5)
	screen := platformcore.NewScreen(w, h)
	RenderBoard(screen, 0, 0, c, Overlay{})

	// Column between tile x=1 and x=2; rows for tiles y=2 and y=3 and the
	// centre between them.
	for _, y := range []int{5, 6, 7} {
		cell := screen.GetCell(8, y)
		if cell.Rune != glyphWallV || cell.Color != colorWall {
			t.Errorf("cell (8,%d) = %q/%v, want wall", y, cell.Rune, cell.Color)
		}
	}
	if screen.Get(8, 3) == glyphWallV || screen.Get(8, 9) == glyphWallV {
		t.Error("wall drawn beyond its two segments")
	}
}

func TestRenderOverlay(t *testing.T) {
	c := newTestController(t, smallConfig())
	w, h := BoardSize(5)

	t.Run("cursor and targets", func(t *testing.T) {
		screen := platformcore.NewScreen(w, h)
		RenderBoard(screen, 0, 0, c, Overlay{
			Cursor:     core.C(2, 0),
			ShowCursor: true,
			Targets:    c.ValidMoves(0),
		})
		if screen.Get(9, 1) != '[' || screen.Get(10, 1) != 'A' || screen.Get(11, 1) != ']' {
			t.Errorf("cursor not drawn around pawn A: %q", screen.Row(1))
		}
		if cell := screen.GetCell(10, 3); cell.Rune != glyphTarget || cell.Color != colorTarget {
			t.Errorf("target (2,1) not highlighted: %q", screen.Row(3))
		}
		if cell := screen.GetCell(10, 1); cell.Color != platformcore.PawnColor(0) {
			t.Errorf("pawn A color = %v", cell.Color)
		}
	})

	t.Run("wall preview", func(t *testing.T) {
		tests := []struct {
			legal bool
			color platformcore.Color
		}{
			{true, colorLegal},
			{false, colorIllegal},
		}
		for _, tt := range tests {
			screen := platformcore.NewScreen(w, h)
			preview := core.W(core.Horizontal, 1, 1)
			RenderBoard(screen, 0, 0, c, Overlay{Preview: &preview, PreviewLegal: tt.legal})
			cell := screen.GetCell(8, 4)
			if cell.Rune != glyphWallH || cell.Color != tt.color {
				t.Errorf("legal=%v: preview centre = %q/%v", tt.legal, cell.Rune, cell.Color)
			}
		}
	})
}

func TestRenderClipsToScreen(t *testing.T) {
	c := newTestController(t, DefaultConfig())
	screen := platformcore.NewScreen(10, 4)
	RenderBoard(screen, 5, 2, c, Overlay{ShowCursor: true})
	if screen.Get(5, 2) != '┌' {
		t.Errorf("expected frame corner at (5,2), got %q", screen.Get(5, 2))
	}
}
