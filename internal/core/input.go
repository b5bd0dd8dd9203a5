package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Move cursor up
	ActionDown              // Move cursor down
	ActionLeft              // Move cursor left
	ActionRight             // Move cursor right
	ActionConfirm           // Select pawn, move, or commit a wall
	ActionCancel            // Deselect or abandon wall placement
	ActionToggleWall        // Switch between move and wall mode
	ActionRotate            // Flip the wall orientation
	ActionPass              // End the turn without acting
	ActionDebug             // Toggle the ownership override
	ActionRestart           // Start the game over
	ActionQuit              // Exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionToggleWall:
		return "ToggleWall"
	case ActionRotate:
		return "Rotate"
	case ActionPass:
		return "Pass"
	case ActionDebug:
		return "Debug"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one tick, in the order the
// keys were pressed. Order matters for a cursor-driven board game: "left,
// left, confirm" must not become "confirm, left".
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{Actions: append([]Action(nil), f.Actions...)}
}
