// Package registry provides a global registry of playable game variants.
// Games register themselves in init() functions, allowing the CLI and the
// menu to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-quoridor/internal/config"
	"github.com/vovakirdan/tui-quoridor/internal/core"
)

// Game is the interface the terminal platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "quoridor").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new game sized for the given screen.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick's worth of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game from loaded settings. The logger is never nil.
type Factory func(settings config.QuoridorConfig, logger *log.Logger) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory to the registry under the given title.
// Typically called from a game's init() function.
// Panics if a variant with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = title
}

// List returns information about all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID. A nil logger discards output.
// Returns an error if the ID is not registered or the settings are rejected.
func Create(id string, settings config.QuoridorConfig, logger *log.Logger) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g, err := f(settings, logger)
	if err != nil {
		return nil, fmt.Errorf("registry: creating %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
