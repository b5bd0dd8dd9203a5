package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Input polling ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Status   string // Short human-readable status line
	GameOver bool   // Whether the game has ended
	Winner   int    // Winning seat when GameOver, otherwise -1
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	// Changed is true when the tick's input altered the game, so the
	// platform knows a redraw is worthwhile.
	Changed bool
}
