// Package registry maps game IDs to factories so the platforms (terminal,
// window, SSH) can create fresh game instances without importing a game
// package directly. Games register themselves from init().
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/rocket-run/internal/core"
)

// Game is the contract between a simulation and the platform driving it.
// Implementations hold pure logic: no terminal, window or audio code.
type Game interface {
	// ID returns the stable identifier used on the command line and as the
	// key under which scores are stored.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a fresh session. The RuntimeConfig supplies screen size,
	// tick rate and the obstacle RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick and reports the
	// resulting state together with any cues raised during the tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a character screen.
	Render(dst *core.Screen)

	// State returns the current score, lives, level and flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
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

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display name of a registered game, or the ID itself
// when it is unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
