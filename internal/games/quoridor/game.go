package quoridor

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-quoridor/internal/config"
	platformcore "github.com/vovakirdan/tui-quoridor/internal/core"
	"github.com/vovakirdan/tui-quoridor/internal/games/quoridor/core"
	"github.com/vovakirdan/tui-quoridor/internal/registry"
)

// Mode is what the board cursor currently addresses.
type Mode int

const (
	ModeMove Mode = iota // Cursor on tiles
	ModeWall             // Cursor on wall centres
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	if m == ModeWall {
		return "wall"
	}
	return "move"
}

// Screen rows above and below the board.
const (
	hudTop    = 2
	hudBottom = 4
)

func init() {
	registry.Register("quoridor", "Quoridor", func(s config.QuoridorConfig, l *log.Logger) (registry.Game, error) {
		return newFromSettings("quoridor", "Quoridor", s, l)
	})
	registry.Register("quoridor4", "Quoridor (4 players)", func(s config.QuoridorConfig, l *log.Logger) (registry.Game, error) {
		s.Players.Count = 4
		s.Players.Layout = nil
		if s.Players.WallsEach > 5 {
			s.Players.WallsEach = 5
		}
		return newFromSettings("quoridor4", "Quoridor (4 players)", s, l)
	})
}

func newFromSettings(id, title string, s config.QuoridorConfig, l *log.Logger) (*Game, error) {
	cfg, err := ConfigFromSettings(s)
	if err != nil {
		return nil, err
	}
	return NewGame(id, title, cfg, WithLogger(l))
}

// Game adapts a Controller to the terminal platform: a cursor, a move or
// wall mode and a status line.
type Game struct {
	id    string
	title string
	ctrl  *Controller

	mode        Mode
	orientation core.Orientation
	cursor      core.Coord
	message     string

	screenW int
	screenH int
}

// NewGame creates a game for the given setup. Options are passed to the
// controller.
func NewGame(id, title string, cfg Config, opts ...Option) (*Game, error) {
	ctrl, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	g := &Game{id: id, title: title, ctrl: ctrl}
	ctrl.Subscribe(g.onEvent)
	g.focusActive()
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Controller returns the underlying game controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Mode returns the cursor mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Cursor returns the cursor position: a tile in move mode, a wall centre
// in wall mode.
func (g *Game) Cursor() core.Coord {
	return g.cursor
}

// Orientation returns the orientation of the wall being aimed.
func (g *Game) Orientation() core.Orientation {
	return g.orientation
}

// Message returns the last feedback line.
func (g *Game) Message() string {
	return g.message
}

// Snapshot returns the controller's snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.ctrl.Snapshot()
}

// Reset restarts the game for the given screen.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.ctrl.Reset()
	g.orientation = core.Horizontal
	g.message = ""
	g.focusActive()
}

func (g *Game) onEvent(e Event) {
	switch e := e.(type) {
	case TurnChanged:
		if e.Previous != e.Current {
			g.focusActive()
		}
	case GridCleared:
		g.focusActive()
	case GameWon:
		g.mode = ModeMove
		g.cursor = e.Position
		g.message = fmt.Sprintf("Player %c wins!", PawnGlyph(e.Winner))
	}
}

// focusActive puts the cursor on the current player's pawn.
func (g *Game) focusActive() {
	g.mode = ModeMove
	g.cursor = g.ctrl.ActivePawn().Position
}

// Step applies the frame's actions in the order they were pressed.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	changed := false
	for _, a := range input.Actions {
		if g.handle(a) {
			changed = true
		}
	}
	return platformcore.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) handle(a platformcore.Action) bool {
	switch a {
	case platformcore.ActionUp:
		g.moveCursor(core.DirUp)
	case platformcore.ActionDown:
		g.moveCursor(core.DirDown)
	case platformcore.ActionLeft:
		g.moveCursor(core.DirLeft)
	case platformcore.ActionRight:
		g.moveCursor(core.DirRight)
	case platformcore.ActionConfirm:
		if g.mode == ModeWall {
			g.confirmWall()
		} else {
			g.confirmMove()
		}
	case platformcore.ActionCancel:
		g.cancel()
	case platformcore.ActionToggleWall:
		g.toggleWall()
	case platformcore.ActionRotate:
		g.orientation = g.orientation.Other()
	case platformcore.ActionPass:
		g.report(g.ctrl.EndTurn())
	case platformcore.ActionDebug:
		g.ctrl.SetDebug(!g.ctrl.Debug())
		if g.ctrl.Debug() {
			g.message = "Debug on: any pawn may act"
		} else {
			g.message = "Debug off"
		}
	case platformcore.ActionRestart:
		g.ctrl.Reset()
		g.message = ""
	default:
		return false
	}
	return true
}

func (g *Game) moveCursor(d core.Dir) {
	g.cursor = g.cursor.Step(d)
	g.clampCursor()
}

// clampCursor keeps the cursor on a tile in move mode and on a wall
// centre in wall mode.
func (g *Game) clampCursor() {
	limit := g.ctrl.Size() - 1
	if g.mode == ModeWall {
		limit--
	}
	g.cursor = core.C(
		platformcore.Clamp(g.cursor.X, 0, limit),
		platformcore.Clamp(g.cursor.Y, 0, limit),
	)
}

// confirmMove selects the pawn under the cursor or moves the selected
// pawn to the cursor. On an empty tile with nothing selected it moves
// the current player's pawn.
func (g *Game) confirmMove() {
	state := g.ctrl.State()
	if i, ok := g.ctrl.PawnAt(g.cursor); ok {
		if state.Kind == core.StateMoving && state.Actor == i {
			g.report(g.ctrl.CancelMove())
			return
		}
		g.report(g.ctrl.TryStartMove(i))
		return
	}
	mover := g.ctrl.CurrentPlayer()
	if state.Kind == core.StateMoving {
		mover = state.Actor
	}
	g.report(g.ctrl.TryMovePawn(mover, g.cursor))
}

func (g *Game) confirmWall() {
	if err := g.ctrl.PlaceWall(g.orientation, g.cursor.X, g.cursor.Y); err != nil {
		g.report(err)
		return
	}
	g.message = ""
	g.mode = ModeMove
}

// toggleWall opens a wall placement and switches the cursor to wall
// centres, or abandons the open placement. In debug mode a pawn under the
// cursor places the wall.
func (g *Game) toggleWall() {
	if g.mode == ModeWall {
		g.report(g.ctrl.CompleteWallPlacement(false))
		g.mode = ModeMove
		return
	}
	var err error
	if i, ok := g.ctrl.PawnAt(g.cursor); ok && g.ctrl.Debug() {
		err = g.ctrl.TryStartWallPlacementAs(i)
	} else {
		err = g.ctrl.TryStartWallPlacement()
	}
	if err != nil {
		g.report(err)
		return
	}
	g.mode = ModeWall
	g.clampCursor()
}

func (g *Game) cancel() {
	switch g.ctrl.State().Kind {
	case core.StateMoving:
		g.report(g.ctrl.CancelMove())
	case core.StatePlacingWall:
		g.report(g.ctrl.CompleteWallPlacement(false))
	}
	g.mode = ModeMove
	g.message = ""
}

// report shows a rejected command on the message line.
func (g *Game) report(err error) {
	if err == nil {
		if g.ctrl.State().Kind != core.StateGameOver {
			g.message = ""
		}
		return
	}
	g.message = err.Error()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	state := g.ctrl.State()
	winner, over := g.ctrl.Winner()
	if !over {
		winner = -1
	}
	return platformcore.GameState{
		Status:   g.status(state),
		GameOver: over,
		Winner:   winner,
	}
}

func (g *Game) status(s core.TurnState) string {
	var status string
	switch s.Kind {
	case core.StateGameOver:
		status = fmt.Sprintf("Player %c won", PawnGlyph(s.Winner))
	case core.StateMoving:
		status = fmt.Sprintf("Player %c moving", PawnGlyph(s.Actor))
	case core.StatePlacingWall:
		status = fmt.Sprintf("Player %c placing a %s wall", PawnGlyph(s.Actor), g.orientation)
	default:
		status = fmt.Sprintf("Player %c to play", PawnGlyph(s.Player))
	}
	if s.Debug {
		status += " [debug]"
	}
	return status
}

// overlay builds the transient UI layer for the board.
func (g *Game) overlay() Overlay {
	if g.mode == ModeWall {
		w := core.W(g.orientation, g.cursor.X, g.cursor.Y)
		return Overlay{
			Preview:      &w,
			PreviewLegal: g.ctrl.CanPlaceWall(w.Orientation, w.X, w.Y),
		}
	}
	ov := Overlay{Cursor: g.cursor, ShowCursor: g.ctrl.State().Kind != core.StateGameOver}
	if s := g.ctrl.State(); s.Kind == core.StateMoving {
		ov.Targets = g.ctrl.ValidMoves(s.Actor)
	}
	return ov
}

// Render draws the title, the board and the HUD.
func (g *Game) Render(dst *platformcore.Screen) {
	w, h := dst.Width(), dst.Height()
	bw, bh := BoardSize(g.ctrl.Size())
	if w < bw || h < bh+hudTop+hudBottom {
		dst.DrawTextCentered(h/2-1, "Terminal too small", platformcore.ColorRed)
		dst.DrawTextCentered(h/2, fmt.Sprintf("need %dx%d", bw, bh+hudTop+hudBottom), platformcore.ColorGray)
		return
	}

	dst.DrawTextCentered(0, g.title, platformcore.ColorWhite)

	ox := (w - bw) / 2
	oy := hudTop
	RenderBoard(dst, ox, oy, g.ctrl, g.overlay())

	// Wall budgets, one entry per pawn.
	y := oy + bh
	x := ox
	for _, p := range g.ctrl.Pawns() {
		label := fmt.Sprintf("%c:%2d ", PawnGlyph(p.Index), p.WallsRemaining)
		color := platformcore.PawnColor(p.Index)
		if !p.Active {
			color = platformcore.ColorGray
		}
		dst.DrawTextColored(x, y, label, color)
		x += len(label)
	}

	state := g.ctrl.State()
	statusColor := platformcore.ColorWhite
	if state.Kind == core.StateGameOver {
		statusColor = platformcore.ColorYellow
	}
	dst.DrawTextCentered(y+1, g.status(state), statusColor)
	if g.message != "" {
		dst.DrawTextCentered(y+2, g.message, platformcore.ColorOrange)
	}
}
