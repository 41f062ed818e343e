// Package registry maps play mode IDs to game factories.
// Modes register from init() so the CLI, the menu and the SSH server can
// start any of them by ID without importing the game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

// Game is what the platform drives. Implementations hold pure logic:
// no terminal, no timers, no storage. The platform maps keys and mouse
// events to an InputFrame, calls Step once per tick and Render once per frame.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// score database, e.g. "minigolf" or "minigolf_practice".
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts over with the given screen size and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick and reports the state plus any events
	// raised during the tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without being reset.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a mode. Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
