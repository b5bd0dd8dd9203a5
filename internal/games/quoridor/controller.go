// Package quoridor provides the Quoridor game: the controller coordinating
// the rules engine, its notifications, scripted replays and the terminal
// frontend adapter.
package quoridor

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-quoridor/internal/games/quoridor/core"
)

// Config describes a game to set up.
type Config struct {
	Size      int
	Players   int // 2 or 4; ignored when Layout is set
	WallsEach int
	// Layout places pawns explicitly instead of the standard layout.
	Layout []core.PawnSpec
	Debug  bool
}

// DefaultConfig returns the classic two-player game on a 9x9 board.
func DefaultConfig() Config {
	return Config{Size: 9, Players: 2, WallsEach: 10}
}

// layoutFor resolves the pawn layout for a board of the given size.
func (c Config) layoutFor(size int) ([]core.PawnSpec, error) {
	specs := c.Layout
	if len(specs) == 0 {
		var err error
		if specs, err = core.DefaultLayout(size, c.Players); err != nil {
			return nil, err
		}
	}
	if err := core.ValidateLayout(size, specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for committed and rejected commands.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller owns one game: the grid, the pawns and the turn machine.
// Every command follows the same order: authorize, validate, commit,
// check victory, transition. A rejected command changes nothing.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	cfg   Config
	specs []core.PawnSpec
	grid  *core.Grid
	turns *core.TurnMachine
	pawns []core.Pawn
	log   *log.Logger

	subs    []subscription
	nextSub int
}

// New validates cfg and sets up a game ready for player 0.
func New(cfg Config, opts ...Option) (*Controller, error) {
	if cfg.WallsEach < 0 {
		return nil, core.NewError(core.CodeInvalidConfig, "wall budget must not be negative, got %d", cfg.WallsEach)
	}
	grid, err := core.NewGrid(cfg.Size)
	if err != nil {
		return nil, err
	}
	specs, err := cfg.layoutFor(cfg.Size)
	if err != nil {
		return nil, err
	}
	turns, err := core.NewTurnMachine(len(specs))
	if err != nil {
		return nil, err
	}
	turns.SetDebug(cfg.Debug)

	c := &Controller{
		cfg:   cfg,
		specs: specs,
		grid:  grid,
		turns: turns,
		log:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.grid.OnCleared(c.reseed)
	c.reseed()
	return c, nil
}

// reseed rebuilds the pawns at their starts with full budgets and restarts
// the turn order. It runs whenever the grid is cleared.
func (c *Controller) reseed() {
	c.pawns = core.NewPawns(c.specs, c.cfg.WallsEach)
	for _, p := range c.pawns {
		_ = c.grid.SetTileOccupied(p.Position, true)
	}
	c.turns.Reset()
	c.syncActive()
}

func (c *Controller) syncActive() {
	current := c.turns.CurrentPlayer()
	for i := range c.pawns {
		c.pawns[i].Active = i == current && !c.turns.IsOver()
	}
}

// Subscribe registers a listener and returns a function removing it.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	id := c.nextSub
	c.nextSub++
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	// Listeners may unsubscribe from inside a callback; an emit in progress
	// keeps ranging over the old slice.
	return func() {
		c.subs = slices.DeleteFunc(slices.Clone(c.subs), func(s subscription) bool {
			return s.id == id
		})
	}
}

func (c *Controller) emit(e Event) {
	for _, s := range c.subs {
		s.fn(e)
	}
}

func (c *Controller) emitTurn(prev core.TurnState) {
	state := c.turns.State()
	if state == prev {
		return
	}
	c.emit(TurnChanged{Previous: prev.Player, Current: state.Player, State: state})
}

func (c *Controller) reject(cmd string, player int, err error) error {
	c.log.Debug("command rejected", "cmd", cmd, "player", player, "code", core.CodeOf(err), "err", err)
	return err
}

// ---- Queries ----

// Size returns the board dimension.
func (c *Controller) Size() int {
	return c.grid.Size()
}

// IsWithinBounds reports whether a tile is on the board.
func (c *Controller) IsWithinBounds(pos core.Coord) bool {
	return c.grid.IsWithinBounds(pos)
}

// IsTileOccupied reports whether a pawn stands on the tile.
func (c *Controller) IsTileOccupied(pos core.Coord) (bool, error) {
	return c.grid.IsTileOccupied(pos)
}

// IsWallGapOccupied reports whether a wall covers the gap segment.
func (c *Controller) IsWallGapOccupied(o core.Orientation, x, y int) (bool, error) {
	return c.grid.IsWallGapOccupied(o, x, y)
}

// CheckWall is a dry run of a wall placement: bounds, overlap, crossing and
// path preservation. The wall budget is not considered.
func (c *Controller) CheckWall(o core.Orientation, x, y int) error {
	return core.CheckWall(c.grid, core.W(o, x, y), c.pawns)
}

// CanPlaceWall is CheckWall as a boolean.
func (c *Controller) CanPlaceWall(o core.Orientation, x, y int) bool {
	return c.CheckWall(o, x, y) == nil
}

// PathExists reports whether goal is reachable from from under the
// current walls.
func (c *Controller) PathExists(from core.Coord, goal core.Goal) bool {
	return core.PathExists(c.grid, from, goal)
}

// FindPath returns a shortest path from from to goal, or nil.
func (c *Controller) FindPath(from core.Coord, goal core.Goal) []core.Coord {
	return core.FindPath(c.grid, from, goal)
}

// State returns the turn state.
func (c *Controller) State() core.TurnState {
	return c.turns.State()
}

// CurrentPlayer returns whose turn it is.
func (c *Controller) CurrentPlayer() int {
	return c.turns.CurrentPlayer()
}

// ActivePawn returns the pawn of the player whose turn it is.
func (c *Controller) ActivePawn() core.Pawn {
	return c.pawns[c.turns.CurrentPlayer()]
}

// Pawns returns a copy of every pawn in index order.
func (c *Controller) Pawns() []core.Pawn {
	return append([]core.Pawn(nil), c.pawns...)
}

// Pawn returns the pawn with the given index.
func (c *Controller) Pawn(i int) (core.Pawn, bool) {
	if i < 0 || i >= len(c.pawns) {
		return core.Pawn{}, false
	}
	return c.pawns[i], true
}

// PlayerPawn returns pawn 0.
func (c *Controller) PlayerPawn() core.Pawn {
	return c.pawns[0]
}

// OpponentPawn returns pawn 1.
func (c *Controller) OpponentPawn() core.Pawn {
	return c.pawns[1]
}

// PawnAt returns the index of the pawn standing on pos.
func (c *Controller) PawnAt(pos core.Coord) (int, bool) {
	for _, p := range c.pawns {
		if p.Position == pos {
			return p.Index, true
		}
	}
	return -1, false
}

// Winner returns the winning player once the game is over.
func (c *Controller) Winner() (int, bool) {
	s := c.turns.State()
	if s.Kind != core.StateGameOver {
		return -1, false
	}
	return s.Winner, true
}

// Walls returns every committed wall.
func (c *Controller) Walls() []core.Wall {
	return c.grid.Walls()
}

// Debug reports whether the ownership override is on.
func (c *Controller) Debug() bool {
	return c.turns.Debug()
}

// ValidMoves returns the tiles pawn i could step to, ignoring whose turn
// it is: orthogonal neighbours not behind a wall and not occupied.
func (c *Controller) ValidMoves(i int) []core.Coord {
	p, ok := c.Pawn(i)
	if !ok {
		return nil
	}
	moves := make([]core.Coord, 0, len(core.Dirs))
	for _, d := range core.Dirs {
		if c.checkStep(p.Position, p.Position.Step(d)) == nil {
			moves = append(moves, p.Position.Step(d))
		}
	}
	return moves
}

// ShortestPathLength returns the number of steps pawn i needs to reach
// its goal under the current walls.
func (c *Controller) ShortestPathLength(i int) (int, bool) {
	p, ok := c.Pawn(i)
	if !ok {
		return 0, false
	}
	return core.ShortestDistance(c.grid, p.Position, p.Goal)
}

// ---- Commands ----

// SetDebug turns the ownership override on or off.
func (c *Controller) SetDebug(on bool) {
	c.turns.SetDebug(on)
	c.cfg.Debug = on
	c.log.Info("debug override", "enabled", on)
}

// checkStep validates a single pawn step against the board.
func (c *Controller) checkStep(from, to core.Coord) error {
	if !c.grid.IsWithinBounds(to) {
		return core.NewError(core.CodeOutOfBounds, "target %v is off the board", to)
	}
	d, adjacent := from.DirTo(to)
	if !adjacent {
		return core.NewError(core.CodeInvalidMoveTarget, "%v is not adjacent to %v", to, from)
	}
	if !c.grid.CanStep(from, d) {
		return core.NewError(core.CodeInvalidMoveTarget, "a wall blocks %v -> %v", from, to)
	}
	if occupied, _ := c.grid.IsTileOccupied(to); occupied {
		return core.NewError(core.CodeInvalidMoveTarget, "%v is occupied", to)
	}
	return nil
}

// TryStartMove selects pawn i for moving.
func (c *Controller) TryStartMove(i int) error {
	prev := c.turns.State()
	if err := c.turns.BeginMove(i); err != nil {
		return c.reject("start-move", i, err)
	}
	c.emitTurn(prev)
	return nil
}

// CancelMove deselects the pawn being moved without ending the turn.
func (c *Controller) CancelMove() error {
	prev := c.turns.State()
	if err := c.turns.CancelMove(); err != nil {
		return c.reject("cancel-move", prev.Actor, err)
	}
	c.emitTurn(prev)
	return nil
}

// TryMovePawn moves pawn i one tile to to. It works from Idle and from a
// move already started for the same pawn.
func (c *Controller) TryMovePawn(i int, to core.Coord) error {
	prev := c.turns.State()
	if err := c.turns.CanMove(i); err != nil {
		return c.reject("move", i, err)
	}
	from := c.pawns[i].Position
	if err := c.checkStep(from, to); err != nil {
		return c.reject("move", i, err)
	}

	if prev.Kind == core.StateIdle {
		if err := c.turns.BeginMove(i); err != nil {
			return c.reject("move", i, err)
		}
	}
	_ = c.grid.SetTileOccupied(from, false)
	_ = c.grid.SetTileOccupied(to, true)
	c.pawns[i].Position = to
	c.log.Info("pawn moved", "pawn", i, "from", from, "to", to)
	c.emit(TileOccupancyChanged{Position: from, Occupied: false})
	c.emit(TileOccupancyChanged{Position: to, Occupied: true})

	winner := c.victory()
	_ = c.turns.FinishMove(winner)
	c.afterTransition(prev, winner)
	return nil
}

// TryMovePawnAt moves whichever pawn stands on from.
func (c *Controller) TryMovePawnAt(from, to core.Coord) error {
	i, ok := c.PawnAt(from)
	if !ok {
		err := core.NewError(core.CodeNoPawnAtPosition, "no pawn at %v", from)
		return c.reject("move", -1, err)
	}
	return c.TryMovePawn(i, to)
}

// TryStartWallPlacement opens a wall placement for the current player.
func (c *Controller) TryStartWallPlacement() error {
	return c.TryStartWallPlacementAs(c.turns.CurrentPlayer())
}

// TryStartWallPlacementAs opens a wall placement for player. Out of turn
// this only succeeds with the debug override on.
func (c *Controller) TryStartWallPlacementAs(player int) error {
	prev := c.turns.State()
	if err := c.turns.CanPlaceWall(player); err != nil {
		return c.reject("start-wall", player, err)
	}
	if err := c.checkBudget(player); err != nil {
		return c.reject("start-wall", player, err)
	}
	_ = c.turns.BeginWallPlacement(player)
	c.emitTurn(prev)
	return nil
}

func (c *Controller) checkBudget(player int) error {
	if c.pawns[player].WallsRemaining > 0 {
		return nil
	}
	err := core.NewError(core.CodeInsufficientWalls, "player %d has no walls remaining", player)
	err.Pawn = player
	return err
}

// PlaceWall validates and commits a wall for the player with the open
// placement, or for the current player when none is open.
func (c *Controller) PlaceWall(o core.Orientation, x, y int) error {
	prev := c.turns.State()
	placer := prev.Player
	if prev.Kind == core.StatePlacingWall {
		placer = prev.Actor
	}
	if err := c.turns.CanPlaceWall(placer); err != nil {
		return c.reject("wall", placer, err)
	}
	if err := c.checkBudget(placer); err != nil {
		return c.reject("wall", placer, err)
	}
	w := core.W(o, x, y)
	if err := core.PlaceWall(c.grid, w, c.pawns); err != nil {
		return c.reject("wall", placer, err)
	}

	if prev.Kind == core.StateIdle {
		_ = c.turns.BeginWallPlacement(placer)
	}
	c.pawns[placer].WallsRemaining--
	c.log.Info("wall placed", "player", placer, "wall", w, "remaining", c.pawns[placer].WallsRemaining)
	c.emit(WallPlaced{Wall: w, Player: placer})

	winner := c.victory()
	_ = c.turns.FinishWallPlacement(winner)
	c.afterTransition(prev, winner)
	return nil
}

// CompleteWallPlacement closes an open placement. With success false the
// placement is cancelled and the turn stays. Success is only produced by
// PlaceWall, so success true while a placement is open is WrongAction.
// Without an open placement it does nothing.
func (c *Controller) CompleteWallPlacement(success bool) error {
	prev := c.turns.State()
	if prev.Kind != core.StatePlacingWall {
		return nil
	}
	if success {
		err := core.NewError(core.CodeWrongAction, "wall placement still open, place a wall first")
		return c.reject("complete-wall", prev.Actor, err)
	}
	_ = c.turns.CancelWallPlacement()
	c.emitTurn(prev)
	return nil
}

// EndTurn passes the turn to the next player.
func (c *Controller) EndTurn() error {
	prev := c.turns.State()
	if err := c.turns.EndTurn(); err != nil {
		return c.reject("end-turn", prev.Player, err)
	}
	c.syncActive()
	c.log.Info("turn passed", "from", prev.Player, "to", c.turns.CurrentPlayer())
	c.emitTurn(prev)
	return nil
}

// UpdateGridConfiguration rebuilds the game on a board of a new size. The
// layout is resolved first so a bad size leaves the game untouched.
func (c *Controller) UpdateGridConfiguration(size int) error {
	if size <= 0 {
		err := core.NewError(core.CodeInvalidConfig, "grid size must be positive, got %d", size)
		return c.reject("resize", -1, err)
	}
	specs, err := c.cfg.layoutFor(size)
	if err != nil {
		return c.reject("resize", -1, err)
	}
	prev := c.turns.State()
	c.specs = specs
	c.cfg.Size = size
	if err := c.grid.Resize(size); err != nil {
		return err
	}
	c.log.Info("grid reconfigured", "size", size, "pawns", len(specs))
	c.emit(GridCleared{Size: size})
	c.emitTurn(prev)
	return nil
}

// Reset clears the board and restarts the game with the same setup.
func (c *Controller) Reset() {
	prev := c.turns.State()
	c.grid.ClearAll()
	c.log.Info("game reset", "size", c.grid.Size())
	c.emit(GridCleared{Size: c.grid.Size()})
	c.emitTurn(prev)
}

// victory returns the first pawn standing on its goal, or -1.
func (c *Controller) victory() int {
	for _, p := range c.pawns {
		if p.Reached() {
			return p.Index
		}
	}
	return -1
}

func (c *Controller) afterTransition(prev core.TurnState, winner int) {
	c.syncActive()
	c.emitTurn(prev)
	if winner >= 0 {
		c.log.Info("game over", "winner", winner, "at", c.pawns[winner].Position)
		c.emit(GameWon{Winner: winner, Position: c.pawns[winner].Position})
	}
}
