package core

// StateKind is the turn machine's state.
type StateKind uint8

const (
	StateIdle StateKind = iota
	StateMoving
	StatePlacingWall
	StateGameOver
)

// String returns the string representation of a state kind.
func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "Idle"
	case StateMoving:
		return "Moving"
	case StatePlacingWall:
		return "PlacingWall"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Action is what the acting player is in the middle of.
type Action uint8

const (
	ActionIdle Action = iota
	ActionMovingPawn
	ActionPlacingWall
)

// String returns the string representation of an action.
func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "Idle"
	case ActionMovingPawn:
		return "MovingPawn"
	case ActionPlacingWall:
		return "PlacingWall"
	default:
		return "Unknown"
	}
}

// TurnState is a read-only view of the turn machine.
type TurnState struct {
	Kind StateKind
	// Player is whose turn it is (activePlayerIndex).
	Player int
	// Actor is the player mid-action. It differs from Player only when the
	// debug override lets someone act out of turn.
	Actor int
	// Winner is the winning player in GameOver, otherwise -1.
	Winner int
	Debug  bool
}

// Action derives the in-progress action from the state.
func (s TurnState) Action() Action {
	switch s.Kind {
	case StateMoving:
		return ActionMovingPawn
	case StatePlacingWall:
		return ActionPlacingWall
	default:
		return ActionIdle
	}
}

// TurnMachine owns whose turn it is and which action is in progress.
// Moving and placing a wall are mutually exclusive by construction: the
// machine holds exactly one state.
//
// The debug override relaxes ownership only. Action exclusivity and the
// terminal GameOver state always hold.
type TurnMachine struct {
	players int
	current int
	actor   int
	kind    StateKind
	winner  int
	debug   bool
}

// NewTurnMachine creates a machine for the given number of players,
// starting Idle with player 0 to act.
func NewTurnMachine(players int) (*TurnMachine, error) {
	if players <= 0 {
		return nil, NewError(CodeInvalidConfig, "turn machine needs players, got %d", players)
	}
	m := &TurnMachine{players: players}
	m.Reset()
	return m, nil
}

// Reset returns to Idle with player 0 to act. The debug flag is kept.
func (m *TurnMachine) Reset() {
	m.current = 0
	m.actor = 0
	m.kind = StateIdle
	m.winner = -1
}

// State returns the current state.
func (m *TurnMachine) State() TurnState {
	return TurnState{
		Kind:   m.kind,
		Player: m.current,
		Actor:  m.actor,
		Winner: m.winner,
		Debug:  m.debug,
	}
}

// CurrentPlayer returns whose turn it is.
func (m *TurnMachine) CurrentPlayer() int {
	return m.current
}

// Players returns the number of players in rotation.
func (m *TurnMachine) Players() int {
	return m.players
}

// Debug reports whether the ownership override is on.
func (m *TurnMachine) Debug() bool {
	return m.debug
}

// SetDebug turns the ownership override on or off.
func (m *TurnMachine) SetDebug(on bool) {
	m.debug = on
}

// IsOver reports whether the game has ended.
func (m *TurnMachine) IsOver() bool {
	return m.kind == StateGameOver
}

// authorize is the ownership guard, the only place the debug flag is read.
func (m *TurnMachine) authorize(player int) error {
	if m.kind == StateGameOver {
		return NewError(CodeGameAlreadyOver, "game over, player %d won", m.winner)
	}
	if player < 0 || player >= m.players {
		return NewError(CodeNoPawnAtPosition, "no pawn with index %d (have %d)", player, m.players)
	}
	if !m.debug && player != m.current {
		err := NewError(CodeNotYourTurn, "player %d acted on player %d's turn", player, m.current)
		err.Pawn = player
		return err
	}
	return nil
}

// CanMove reports whether player may move now. A move is initiated from
// Idle, or continued from Moving by the same player.
func (m *TurnMachine) CanMove(player int) error {
	if err := m.authorize(player); err != nil {
		return err
	}
	switch {
	case m.kind == StateIdle:
		return nil
	case m.kind == StateMoving && m.actor == player:
		return nil
	}
	return NewError(CodeWrongAction, "cannot move while %s", m.kind)
}

// BeginMove enters Moving(player).
func (m *TurnMachine) BeginMove(player int) error {
	if err := m.CanMove(player); err != nil {
		return err
	}
	m.kind = StateMoving
	m.actor = player
	return nil
}

// CancelMove leaves Moving without rotating the turn.
func (m *TurnMachine) CancelMove() error {
	if m.kind != StateMoving {
		return NewError(CodeWrongAction, "no move in progress (%s)", m.kind)
	}
	m.idle()
	return nil
}

// FinishMove completes a committed move. winner is the player whose pawn
// reached its goal, or -1.
func (m *TurnMachine) FinishMove(winner int) error {
	if m.kind != StateMoving {
		return NewError(CodeWrongAction, "no move in progress (%s)", m.kind)
	}
	m.finish(winner)
	return nil
}

// CanPlaceWall reports whether player may place a wall now. Placement is
// re-entrant: it is allowed from Idle and from the same player's open
// placement.
func (m *TurnMachine) CanPlaceWall(player int) error {
	if err := m.authorize(player); err != nil {
		return err
	}
	switch {
	case m.kind == StateIdle:
		return nil
	case m.kind == StatePlacingWall && m.actor == player:
		return nil
	}
	return NewError(CodeWrongAction, "cannot place a wall while %s", m.kind)
}

// BeginWallPlacement enters PlacingWall(player).
func (m *TurnMachine) BeginWallPlacement(player int) error {
	if err := m.CanPlaceWall(player); err != nil {
		return err
	}
	m.kind = StatePlacingWall
	m.actor = player
	return nil
}

// CancelWallPlacement leaves PlacingWall without rotating the turn.
func (m *TurnMachine) CancelWallPlacement() error {
	if m.kind != StatePlacingWall {
		return NewError(CodeWrongAction, "no wall placement in progress (%s)", m.kind)
	}
	m.idle()
	return nil
}

// FinishWallPlacement completes a committed wall. winner is -1 unless the
// post-commit victory check found one.
func (m *TurnMachine) FinishWallPlacement(winner int) error {
	if m.kind != StatePlacingWall {
		return NewError(CodeWrongAction, "no wall placement in progress (%s)", m.kind)
	}
	m.finish(winner)
	return nil
}

// EndTurn passes the turn to the next player. It is an explicit request,
// so it rotates in debug mode as well.
func (m *TurnMachine) EndTurn() error {
	if m.kind == StateGameOver {
		return NewError(CodeGameAlreadyOver, "game over, player %d won", m.winner)
	}
	if m.kind != StateIdle {
		return NewError(CodeWrongAction, "cannot end turn while %s", m.kind)
	}
	m.current = m.next()
	m.actor = m.current
	return nil
}

func (m *TurnMachine) finish(winner int) {
	if winner >= 0 {
		m.kind = StateGameOver
		m.winner = winner
		m.actor = winner
		return
	}
	if !m.debug {
		m.current = m.next()
	}
	m.idle()
}

func (m *TurnMachine) idle() {
	m.kind = StateIdle
	m.actor = m.current
}

func (m *TurnMachine) next() int {
	return (m.current + 1) % m.players
}
