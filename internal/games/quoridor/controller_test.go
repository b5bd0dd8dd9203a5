package quoridor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-quoridor/internal/games/quoridor/core"
)

func smallConfig() Config {
	return Config{Size: 5, Players: 2, WallsEach: 10}
}

func newTestController(t *testing.T, cfg Config) *Controller {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v): %v", cfg, err)
	}
	return c
}

func wantCode(t *testing.T, err error, code core.Code) {
	t.Helper()
	if got := core.CodeOf(err); got != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative walls", Config{Size: 9, Players: 2, WallsEach: -1}},
		{"zero size", Config{Size: 0, Players: 2}},
		{"three players", Config{Size: 9, Players: 3}},
		{"layout off board", Config{Size: 5, Layout: []core.PawnSpec{
			{Start: core.C(2, 0), Goal: core.RowGoal(4)},
			{Start: core.C(2, 7), Goal: core.RowGoal(0)},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if !errors.Is(err, core.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewSeedsPawns(t *testing.T) {
	c := newTestController(t, DefaultConfig())
	if c.Size() != 9 {
		t.Fatalf("expected size 9, got %d", c.Size())
	}
	p0, p1 := c.PlayerPawn(), c.OpponentPawn()
	if p0.Position != core.C(4, 0) || p1.Position != core.C(4, 8) {
		t.Errorf("unexpected starts %v, %v", p0.Position, p1.Position)
	}
	if p0.WallsRemaining != 10 || p1.WallsRemaining != 10 {
		t.Errorf("expected 10 walls each, got %d, %d", p0.WallsRemaining, p1.WallsRemaining)
	}
	if !p0.Active || p1.Active {
		t.Errorf("expected pawn 0 active only, got %v, %v", p0.Active, p1.Active)
	}
	for _, p := range []core.Pawn{p0, p1} {
		if occupied, _ := c.IsTileOccupied(p.Position); !occupied {
			t.Errorf("start %v not marked occupied", p.Position)
		}
	}
}

func TestMoveRotatesTurn(t *testing.T) {
	c := newTestController(t, smallConfig())

	if err := c.TryMovePawn(0, core.C(2, 1)); err != nil {
		t.Fatalf("TryMovePawn: %v", err)
	}
	if c.CurrentPlayer() != 1 {
		t.Errorf("expected player 1 to act, got %d", c.CurrentPlayer())
	}
	if s := c.State(); s.Kind != core.StateIdle {
		t.Errorf("expected Idle, got %v", s.Kind)
	}
	if p, _ := c.Pawn(0); p.Position != core.C(2, 1) || p.Active {
		t.Errorf("unexpected pawn 0 %+v", p)
	}
	if !c.ActivePawn().Active || c.ActivePawn().Index != 1 {
		t.Errorf("expected pawn 1 active, got %+v", c.ActivePawn())
	}
	if occupied, _ := c.IsTileOccupied(core.C(2, 0)); occupied {
		t.Error("vacated tile still occupied")
	}
	if occupied, _ := c.IsTileOccupied(core.C(2, 1)); !occupied {
		t.Error("target tile not occupied")
	}

	if err := c.TryMovePawnAt(core.C(2, 4), core.C(1, 4)); err != nil {
		t.Fatalf("TryMovePawnAt: %v", err)
	}
	if c.CurrentPlayer() != 0 {
		t.Errorf("expected player 0 to act, got %d", c.CurrentPlayer())
	}
}

func TestMoveRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *Controller
		pawn  int
		to    core.Coord
		code  core.Code
	}{
		{
			name:  "not your turn",
			setup: func(t *testing.T) *Controller { return newTestController(t, smallConfig()) },
			pawn:  1,
			to:    core.C(2, 3),
			code:  core.CodeNotYourTurn,
		},
		{
			name:  "off the board",
			setup: func(t *testing.T) *Controller { return newTestController(t, smallConfig()) },
			pawn:  0,
			to:    core.C(2, -1),
			code:  core.CodeOutOfBounds,
		},
		{
			name:  "diagonal",
			setup: func(t *testing.T) *Controller { return newTestController(t, smallConfig()) },
			pawn:  0,
			to:    core.C(3, 1),
			code:  core.CodeInvalidMoveTarget,
		},
		{
			name:  "two tiles",
			setup: func(t *testing.T) *Controller { return newTestController(t, smallConfig()) },
			pawn:  0,
			to:    core.C(2, 2),
			code:  core.CodeInvalidMoveTarget,
		},
		{
			name: "behind a wall",
			setup: func(t *testing.T) *Controller {
				c := newTestController(t, smallConfig())
				if err := c.PlaceWall(core.Horizontal, 1, 0); err != nil {
					t.Fatalf("PlaceWall: %v", err)
				}
				if err := c.TryMovePawn(1, core.C(2, 3)); err != nil {
					t.Fatalf("TryMovePawn: %v", err)
				}
				return c
			},
			pawn: 0,
			to:   core.C(2, 1),
			code: core.CodeInvalidMoveTarget,
		},
		{
			name: "occupied",
			setup: func(t *testing.T) *Controller {
				return newTestController(t, Config{Size: 5, WallsEach: 10, Layout: []core.PawnSpec{
					{Start: core.C(2, 1), Goal: core.RowGoal(4)},
					{Start: core.C(2, 2), Goal: core.RowGoal(0)},
				}})
			},
			pawn: 0,
			to:   core.C(2, 2),
			code: core.CodeInvalidMoveTarget,
		},
		{
			name:  "unknown pawn",
			setup: func(t *testing.T) *Controller { return newTestController(t, smallConfig()) },
			pawn:  7,
			to:    core.C(2, 1),
			code:  core.CodeNoPawnAtPosition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.setup(t)
			before := c.Snapshot()
			wantCode(t, c.TryMovePawn(tt.pawn, tt.to), tt.code)
			after := c.Snapshot()
			if before.Player != after.Player || before.State != after.State {
				t.Errorf("turn changed after rejected move: %+v -> %+v", before, after)
			}
			for i := range before.Pawns {
				if before.Pawns[i] != after.Pawns[i] {
					t.Errorf("pawn %d changed after rejected move", i)
				}
			}
		})
	}
}

func TestMoveAtEmptyTile(t *testing.T) {
	c := newTestController(t, smallConfig())
	wantCode(t, c.TryMovePawnAt(core.C(0, 0), core.C(0, 1)), core.CodeNoPawnAtPosition)
}

func TestCancelMoveKeepsTurn(t *testing.T) {
	c := newTestController(t, smallConfig())

	if err := c.TryStartMove(0); err != nil {
		t.Fatalf("TryStartMove: %v", err)
	}
	if s := c.State(); s.Kind != core.StateMoving || s.Actor != 0 {
		t.Fatalf("expected Moving(0), got %+v", s)
	}
	if err := c.CancelMove(); err != nil {
		t.Fatalf("CancelMove: %v", err)
	}
	if s := c.State(); s.Kind != core.StateIdle || s.Player != 0 {
		t.Errorf("expected Idle with player 0, got %+v", s)
	}
	wantCode(t, c.CancelMove(), core.CodeWrongAction)
}

func TestMoveFromStartedMove(t *testing.T) {
	c := newTestController(t, smallConfig())
	if err := c.TryStartMove(0); err != nil {
		t.Fatalf("TryStartMove: %v", err)
	}
	if err := c.TryMovePawn(0, core.C(1, 0)); err != nil {
		t.Fatalf("TryMovePawn: %v", err)
	}
	if c.CurrentPlayer() != 1 || c.State().Kind != core.StateIdle {
		t.Errorf("expected Idle with player 1, got %+v", c.State())
	}
}

func TestMoveAndWallAreExclusive(t *testing.T) {
	c := newTestController(t, smallConfig())

	if err := c.TryStartMove(0); err != nil {
		t.Fatalf("TryStartMove: %v", err)
	}
	wantCode(t, c.TryStartWallPlacement(), core.CodeWrongAction)
	wantCode(t, c.PlaceWall(core.Horizontal, 0, 2), core.CodeWrongAction)
	if err := c.CancelMove(); err != nil {
		t.Fatalf("CancelMove: %v", err)
	}

	if err := c.TryStartWallPlacement(); err != nil {
		t.Fatalf("TryStartWallPlacement: %v", err)
	}
	wantCode(t, c.TryStartMove(0), core.CodeWrongAction)
	wantCode(t, c.TryMovePawn(0, core.C(2, 1)), core.CodeWrongAction)
}

func TestPlaceWallSpendsBudget(t *testing.T) {
	c := newTestController(t, smallConfig())

	if err := c.PlaceWall(core.Horizontal, 0, 1); err != nil {
		t.Fatalf("PlaceWall: %v", err)
	}
	if p := c.PlayerPawn(); p.WallsRemaining != 9 {
		t.Errorf("expected 9 walls left, got %d", p.WallsRemaining)
	}
	if c.OpponentPawn().WallsRemaining != 10 {
		t.Errorf("opponent budget changed")
	}
	if c.CurrentPlayer() != 1 {
		t.Errorf("expected player 1 to act, got %d", c.CurrentPlayer())
	}
	walls := c.Walls()
	if len(walls) != 1 || walls[0] != core.W(core.Horizontal, 0, 1) {
		t.Errorf("unexpected walls %v", walls)
	}
	for _, x := range []int{0, 1} {
		if occupied, _ := c.IsWallGapOccupied(core.Horizontal, x, 1); !occupied {
			t.Errorf("gap h(%d,1) not occupied", x)
		}
	}
}

func TestPlaceWallFromOpenPlacement(t *testing.T) {
	c := newTestController(t, smallConfig())

	if err := c.TryStartWallPlacement(); err != nil {
		t.Fatalf("TryStartWallPlacement: %v", err)
	}
	// A rejected wall keeps the placement open.
	wantCode(t, c.PlaceWall(core.Horizontal, 4, 0), core.CodeOutOfBounds)
	if s := c.State(); s.Kind != core.StatePlacingWall {
		t.Fatalf("expected PlacingWall, got %v", s.Kind)
	}
	if err := c.PlaceWall(core.Vertical, 0, 0); err != nil {
		t.Fatalf("PlaceWall: %v", err)
	}
	if s := c.State(); s.Kind != core.StateIdle || s.Player != 1 {
		t.Errorf("expected Idle with player 1, got %+v", s)
	}
}

func TestEncirclementIsRejectedAtomically(t *testing.T) {
	cfg := smallConfig()
	cfg.Debug = true
	c := newTestController(t, cfg)

	// Pawn 0 starts at (2,0). These two walls leave column 4 as the
	// only way out of the top row.
	for _, w := range []core.Wall{core.W(core.Horizontal, 0, 0), core.W(core.Horizontal, 2, 0)} {
		if err := c.PlaceWall(w.Orientation, w.X, w.Y); err != nil {
			t.Fatalf("PlaceWall(%v): %v", w, err)
		}
	}
	if !c.PathExists(core.C(2, 0), core.RowGoal(4)) {
		t.Fatal("expected a path before sealing")
	}

	err := c.PlaceWall(core.Vertical, 3, 0)
	wantCode(t, err, core.CodeWouldBlockPath)
	var re *core.RuleError
	if !errors.As(err, &re) || re.Pawn != 0 {
		t.Errorf("expected pawn 0 to be named, got %v", err)
	}

	if len(c.Walls()) != 2 {
		t.Errorf("expected 2 walls, got %v", c.Walls())
	}
	if c.PlayerPawn().WallsRemaining != 8 {
		t.Errorf("expected 8 walls left, got %d", c.PlayerPawn().WallsRemaining)
	}
	for _, y := range []int{0, 1} {
		if occupied, _ := c.IsWallGapOccupied(core.Vertical, 3, y); occupied {
			t.Errorf("gap v(3,%d) set by rejected wall", y)
		}
	}
	if c.State().Kind != core.StateIdle {
		t.Errorf("expected Idle, got %v", c.State().Kind)
	}
	if n, ok := c.ShortestPathLength(0); !ok || n != 6 {
		t.Errorf("expected path of 6, got %d (%v)", n, ok)
	}
}

func TestInsufficientWalls(t *testing.T) {
	cfg := smallConfig()
	cfg.WallsEach = 1
	c := newTestController(t, cfg)

	if err := c.PlaceWall(core.Horizontal, 0, 2); err != nil {
		t.Fatalf("PlaceWall: %v", err)
	}
	if err := c.PlaceWall(core.Horizontal, 2, 2); err != nil {
		t.Fatalf("PlaceWall: %v", err)
	}

	err := c.TryStartWallPlacement()
	wantCode(t, err, core.CodeInsufficientWalls)
	var re *core.RuleError
	if !errors.As(err, &re) || re.Pawn != 0 {
		t.Errorf("expected pawn 0 to be named, got %v", err)
	}
	wantCode(t, c.PlaceWall(core.Vertical, 0, 0), core.CodeInsufficientWalls)
	if c.State().Kind != core.StateIdle {
		t.Errorf("expected Idle, got %v", c.State().Kind)
	}

	if err := c.TryMovePawn(0, core.C(2, 1)); err != nil {
		t.Errorf("moving without walls should work: %v", err)
	}
}

func TestZeroWallBudget(t *testing.T) {
	cfg := smallConfig()
	cfg.WallsEach = 0
	c := newTestController(t, cfg)
	wantCode(t, c.PlaceWall(core.Horizontal, 0, 0), core.CodeInsufficientWalls)
}

func winningConfig() Config {
	return Config{Size: 5, WallsEach: 2, Layout: []core.PawnSpec{
		{Start: core.C(2, 3), Goal: core.RowGoal(4)},
		{Start: core.C(0, 3), Goal: core.RowGoal(0)},
	}}
}

func TestGameOverIsTerminal(t *testing.T) {
	c := newTestController(t, winningConfig())

	if err := c.TryMovePawn(0, core.C(2, 4)); err != nil {
		t.Fatalf("TryMovePawn: %v", err)
	}
	winner, over := c.Winner()
	if !over || winner != 0 {
		t.Fatalf("expected player 0 to win, got %d (%v)", winner, over)
	}
	if s := c.State(); s.Kind != core.StateGameOver || s.Winner != 0 {
		t.Errorf("expected GameOver(0), got %+v", s)
	}
	for _, p := range c.Pawns() {
		if p.Active {
			t.Errorf("pawn %d active after game over", p.Index)
		}
	}

	wantCode(t, c.TryMovePawn(1, core.C(0, 2)), core.CodeGameAlreadyOver)
	wantCode(t, c.TryMovePawn(0, core.C(1, 4)), core.CodeGameAlreadyOver)
	wantCode(t, c.TryStartMove(1), core.CodeGameAlreadyOver)
	wantCode(t, c.TryStartWallPlacement(), core.CodeGameAlreadyOver)
	wantCode(t, c.PlaceWall(core.Horizontal, 0, 0), core.CodeGameAlreadyOver)
	wantCode(t, c.EndTurn(), core.CodeGameAlreadyOver)

	c.SetDebug(true)
	wantCode(t, c.TryMovePawn(1, core.C(0, 2)), core.CodeGameAlreadyOver)

	c.Reset()
	if s := c.State(); s.Kind != core.StateIdle || s.Player != 0 || s.Winner != -1 {
		t.Errorf("expected fresh Idle after reset, got %+v", s)
	}
	if p := c.PlayerPawn(); p.Position != core.C(2, 3) {
		t.Errorf("expected pawn 0 back at start, got %v", p.Position)
	}
	if occupied, _ := c.IsTileOccupied(core.C(2, 4)); occupied {
		t.Error("winning tile still occupied after reset")
	}
	if !c.Debug() {
		t.Error("reset should keep the debug override")
	}
}

func TestDebugOverride(t *testing.T) {
	cfg := smallConfig()
	cfg.Debug = true
	c := newTestController(t, cfg)

	if err := c.TryMovePawn(1, core.C(2, 3)); err != nil {
		t.Fatalf("out-of-turn move in debug: %v", err)
	}
	if c.CurrentPlayer() != 0 {
		t.Errorf("debug moves must not rotate, got player %d", c.CurrentPlayer())
	}
	if err := c.TryStartWallPlacementAs(1); err != nil {
		t.Fatalf("TryStartWallPlacementAs: %v", err)
	}
	if err := c.PlaceWall(core.Vertical, 0, 0); err != nil {
		t.Fatalf("PlaceWall: %v", err)
	}
	if c.OpponentPawn().WallsRemaining != 9 || c.PlayerPawn().WallsRemaining != 10 {
		t.Errorf("wall charged to the wrong player: %d, %d",
			c.PlayerPawn().WallsRemaining, c.OpponentPawn().WallsRemaining)
	}

	// Exclusivity still holds.
	if err := c.TryStartMove(1); err != nil {
		t.Fatalf("TryStartMove: %v", err)
	}
	wantCode(t, c.TryStartMove(0), core.CodeWrongAction)
	if err := c.CancelMove(); err != nil {
		t.Fatalf("CancelMove: %v", err)
	}

	if err := c.EndTurn(); err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	if c.CurrentPlayer() != 1 {
		t.Errorf("EndTurn should rotate in debug, got player %d", c.CurrentPlayer())
	}

	c.SetDebug(false)
	wantCode(t, c.TryMovePawn(0, core.C(2, 1)), core.CodeNotYourTurn)
}

func TestStartWallAsOtherPlayerNeedsDebug(t *testing.T) {
	c := newTestController(t, smallConfig())
	wantCode(t, c.TryStartWallPlacementAs(1), core.CodeNotYourTurn)
	wantCode(t, c.TryStartWallPlacementAs(5), core.CodeNoPawnAtPosition)
}

func TestCompleteWallPlacement(t *testing.T) {
	c := newTestController(t, smallConfig())

	// Nothing open: no-op either way.
	if err := c.CompleteWallPlacement(true); err != nil {
		t.Errorf("CompleteWallPlacement(true) with nothing open: %v", err)
	}
	if err := c.CompleteWallPlacement(false); err != nil {
		t.Errorf("CompleteWallPlacement(false) with nothing open: %v", err)
	}

	if err := c.TryStartWallPlacement(); err != nil {
		t.Fatalf("TryStartWallPlacement: %v", err)
	}
	wantCode(t, c.CompleteWallPlacement(true), core.CodeWrongAction)
	if c.State().Kind != core.StatePlacingWall {
		t.Errorf("placement should stay open, got %v", c.State().Kind)
	}

	if err := c.CompleteWallPlacement(false); err != nil {
		t.Fatalf("CompleteWallPlacement(false): %v", err)
	}
	if s := c.State(); s.Kind != core.StateIdle || s.Player != 0 {
		t.Errorf("expected Idle with player 0, got %+v", s)
	}
	if c.PlayerPawn().WallsRemaining != 10 {
		t.Errorf("cancelled placement spent a wall")
	}
}

func TestEndTurn(t *testing.T) {
	c := newTestController(t, smallConfig())

	if err := c.EndTurn(); err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	if c.CurrentPlayer() != 1 || !c.OpponentPawn().Active || c.PlayerPawn().Active {
		t.Errorf("expected pawn 1 active, got %+v", c.Pawns())
	}

	if err := c.TryStartMove(1); err != nil {
		t.Fatalf("TryStartMove: %v", err)
	}
	wantCode(t, c.EndTurn(), core.CodeWrongAction)
}

func TestFourPlayerRotation(t *testing.T) {
	c := newTestController(t, Config{Size: 9, Players: 4, WallsEach: 5})

	want := []int{1, 2, 3, 0}
	for _, next := range want {
		if err := c.EndTurn(); err != nil {
			t.Fatalf("EndTurn: %v", err)
		}
		if c.CurrentPlayer() != next {
			t.Fatalf("expected player %d, got %d", next, c.CurrentPlayer())
		}
	}
	if p, _ := c.Pawn(2); p.Position != core.C(0, 4) || p.Goal != core.ColumnGoal(8) {
		t.Errorf("unexpected pawn 2 %+v", p)
	}
}

func TestEventsAndUnsubscribe(t *testing.T) {
	c := newTestController(t, smallConfig())

	var events []Event
	unsubscribe := c.Subscribe(func(e Event) {
		events = append(events, e)
	})

	if err := c.TryMovePawn(0, core.C(2, 1)); err != nil {
		t.Fatalf("TryMovePawn: %v", err)
	}
	want := []Event{
		TileOccupancyChanged{Position: core.C(2, 0), Occupied: false},
		TileOccupancyChanged{Position: core.C(2, 1), Occupied: true},
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d: %v", len(events), events)
	}
	for i, e := range want {
		if events[i] != e {
			t.Errorf("event %d = %#v, want %#v", i, events[i], e)
		}
	}
	turn, ok := events[2].(TurnChanged)
	if !ok || turn.Previous != 0 || turn.Current != 1 || turn.State.Kind != core.StateIdle {
		t.Errorf("unexpected turn event %#v", events[2])
	}

	events = nil
	if err := c.PlaceWall(core.Vertical, 0, 0); err != nil {
		t.Fatalf("PlaceWall: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %v", events)
	}
	if placed, ok := events[0].(WallPlaced); !ok || placed.Player != 1 || placed.Wall != core.W(core.Vertical, 0, 0) {
		t.Errorf("unexpected wall event %#v", events[0])
	}

	// Rejected commands are silent.
	events = nil
	_ = c.TryMovePawn(1, core.C(2, 3))
	if len(events) != 0 {
		t.Errorf("rejected command emitted %v", events)
	}

	unsubscribe()
	if err := c.TryMovePawn(0, core.C(2, 2)); err != nil {
		t.Fatalf("TryMovePawn: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("unsubscribed listener received %v", events)
	}
}

func TestUnsubscribeDuringCallback(t *testing.T) {
	c := newTestController(t, smallConfig())

	var a, b, d int
	var unsubscribeA func()
	unsubscribeA = c.Subscribe(func(Event) {
		a++
		unsubscribeA()
	})
	c.Subscribe(func(Event) { b++ })
	c.Subscribe(func(Event) { d++ })

	if err := c.EndTurn(); err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	if a != 1 || b != 1 || d != 1 {
		t.Fatalf("after first turn change got a=%d b=%d d=%d, want 1 each", a, b, d)
	}

	if err := c.EndTurn(); err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	if a != 1 || b != 2 || d != 2 {
		t.Errorf("after second turn change got a=%d b=%d d=%d, want 1, 2, 2", a, b, d)
	}
}

func TestGameWonEvent(t *testing.T) {
	c := newTestController(t, winningConfig())

	var won []GameWon
	c.Subscribe(func(e Event) {
		if w, ok := e.(GameWon); ok {
			won = append(won, w)
		}
	})
	if err := c.TryMovePawn(0, core.C(2, 4)); err != nil {
		t.Fatalf("TryMovePawn: %v", err)
	}
	if len(won) != 1 || won[0].Winner != 0 || won[0].Position != core.C(2, 4) {
		t.Errorf("unexpected GameWon events %v", won)
	}
}

func TestUpdateGridConfiguration(t *testing.T) {
	c := newTestController(t, smallConfig())
	if err := c.PlaceWall(core.Horizontal, 0, 1); err != nil {
		t.Fatalf("PlaceWall: %v", err)
	}

	var cleared []GridCleared
	c.Subscribe(func(e Event) {
		if g, ok := e.(GridCleared); ok {
			cleared = append(cleared, g)
		}
	})

	if err := c.UpdateGridConfiguration(7); err != nil {
		t.Fatalf("UpdateGridConfiguration: %v", err)
	}
	if c.Size() != 7 {
		t.Errorf("expected size 7, got %d", c.Size())
	}
	if len(c.Walls()) != 0 {
		t.Errorf("walls survived resize: %v", c.Walls())
	}
	if p := c.PlayerPawn(); p.Position != core.C(3, 0) || p.Goal != core.RowGoal(6) || p.WallsRemaining != 10 {
		t.Errorf("unexpected pawn 0 after resize %+v", p)
	}
	if c.CurrentPlayer() != 0 {
		t.Errorf("expected player 0 after resize, got %d", c.CurrentPlayer())
	}
	if len(cleared) != 1 || cleared[0].Size != 7 {
		t.Errorf("unexpected GridCleared events %v", cleared)
	}

	wantCode(t, c.UpdateGridConfiguration(2), core.CodeInvalidConfig)
	wantCode(t, c.UpdateGridConfiguration(0), core.CodeInvalidConfig)
	if c.Size() != 7 {
		t.Errorf("failed resize changed the size to %d", c.Size())
	}
}

func TestUpdateGridConfigurationKeepsLayoutThatFits(t *testing.T) {
	c := newTestController(t, Config{Size: 5, WallsEach: 3, Layout: []core.PawnSpec{
		{Start: core.C(4, 4), Goal: core.TileGoal(core.C(0, 0))},
		{Start: core.C(0, 0), Goal: core.TileGoal(core.C(4, 4))},
	}})

	wantCode(t, c.UpdateGridConfiguration(3), core.CodeInvalidConfig)
	if c.Size() != 5 || c.PlayerPawn().Position != core.C(4, 4) {
		t.Errorf("failed resize changed the game")
	}
	if err := c.UpdateGridConfiguration(6); err != nil {
		t.Fatalf("UpdateGridConfiguration: %v", err)
	}
	if c.PlayerPawn().Position != core.C(4, 4) {
		t.Errorf("layout not kept, pawn 0 at %v", c.PlayerPawn().Position)
	}
}

func TestSingleOccupancy(t *testing.T) {
	c := newTestController(t, smallConfig())
	moves := []struct {
		pawn int
		to   core.Coord
	}{
		{0, core.C(2, 1)},
		{1, core.C(2, 3)},
		{0, core.C(3, 1)},
		{1, core.C(2, 2)},
		{0, core.C(3, 2)},
		{1, core.C(1, 2)},
	}
	for _, m := range moves {
		if err := c.TryMovePawn(m.pawn, m.to); err != nil {
			t.Fatalf("TryMovePawn(%d, %v): %v", m.pawn, m.to, err)
		}

		occupied := 0
		for y := 0; y < c.Size(); y++ {
			for x := 0; x < c.Size(); x++ {
				if ok, _ := c.IsTileOccupied(core.C(x, y)); ok {
					occupied++
					if _, found := c.PawnAt(core.C(x, y)); !found {
						t.Errorf("tile (%d,%d) occupied without a pawn", x, y)
					}
				}
			}
		}
		if occupied != len(c.Pawns()) {
			t.Fatalf("expected %d occupied tiles, got %d", len(c.Pawns()), occupied)
		}
	}
}

func TestValidMovesAndPaths(t *testing.T) {
	c := newTestController(t, smallConfig())

	got := c.ValidMoves(0)
	want := []core.Coord{core.C(3, 0), core.C(2, 1), core.C(1, 0)}
	if len(got) != len(want) {
		t.Fatalf("ValidMoves = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ValidMoves[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if c.ValidMoves(9) != nil {
		t.Error("expected no moves for an unknown pawn")
	}

	if n, ok := c.ShortestPathLength(0); !ok || n != 4 {
		t.Errorf("expected path length 4, got %d (%v)", n, ok)
	}
	path := c.FindPath(core.C(2, 0), core.RowGoal(4))
	if len(path) != 5 || path[0] != core.C(2, 0) || path[4].Y != 4 {
		t.Errorf("unexpected path %v", path)
	}
}

func TestCheckWallIsADryRun(t *testing.T) {
	c := newTestController(t, smallConfig())

	if err := c.CheckWall(core.Horizontal, 1, 1); err != nil {
		t.Fatalf("CheckWall: %v", err)
	}
	if !c.CanPlaceWall(core.Horizontal, 1, 1) {
		t.Error("CanPlaceWall disagrees with CheckWall")
	}
	if len(c.Walls()) != 0 || c.PlayerPawn().WallsRemaining != 10 {
		t.Error("dry run changed the game")
	}
	wantCode(t, c.CheckWall(core.Vertical, 4, 0), core.CodeOutOfBounds)
}

func TestRejectedCommandsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	c, err := New(smallConfig(), WithLogger(logger))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_ = c.TryMovePawn(1, core.C(2, 3))
	out := buf.String()
	if !strings.Contains(out, "command rejected") || !strings.Contains(out, string(core.CodeNotYourTurn)) {
		t.Errorf("unexpected log output %q", out)
	}

	buf.Reset()
	if err := c.TryMovePawn(0, core.C(2, 1)); err != nil {
		t.Fatalf("TryMovePawn: %v", err)
	}
	if !strings.Contains(buf.String(), "pawn moved") {
		t.Errorf("expected committed move to be logged, got %q", buf.String())
	}
}
