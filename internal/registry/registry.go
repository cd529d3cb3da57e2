// Package registry maps game IDs to factories. The maysday package registers
// itself from init(); the CLI, the terminal frontend and the window frontend
// only ever ask for games by ID, so none of them import game logic directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/maysday/internal/core"
)

// Game is a pure simulation driven one tick at a time by a frontend.
// It never touches the terminal, the window or the database: frontends
// translate input into a core.InputFrame, draw the core.Screen it renders
// into, and record seasons from the core.GameState it reports.
type Game interface {
	// ID is the stable key used on the command line and in the seasons
	// database, e.g. "maysday".
	ID() string

	// Title is the name shown in menus and window titles.
	Title() string

	// Reset starts a fresh farm sized to cfg. A non-nil error means the
	// config or room layout could not be loaded; the session must not start.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one tick. Events in the result are
	// human-readable lines the frontends log.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports tomatoes, day, saplings in hand and pause state.
	State() core.GameState
}

// Resizer is implemented by games whose state must survive a terminal or
// window resize. Frontends call Resize instead of Reset when the drawing
// surface changes; games without it are reset.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet Reset, game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. Registering the same id twice is a
// programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create returns a new instance of the game registered under id.
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
