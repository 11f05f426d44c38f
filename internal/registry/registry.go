// Package registry provides a global registry for minigame factories.
// Minigames register themselves in init() functions, allowing the session
// and the CLI to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pou-arcade/internal/config"
	"github.com/vovakirdan/pou-arcade/internal/core"
)

// Game is the contract every minigame implements.
// Minigames contain pure logic with no external dependencies (especially no Bubble Tea).
// The host handles input mapping, timing, audio output and drawing.
type Game interface {
	// ID returns a unique identifier for this minigame (e.g., "catcher").
	// Used for CLI commands.
	ID() string

	// Title returns the name shown in the minigame menu (e.g., "Food Drop").
	Title() string

	// Reset restores the starting state. Called on entry from the menu
	// and when restarting after game over.
	Reset()

	// Step advances the simulation by one fixed tick.
	// The context carries the current skin and the gated audio collaborator.
	Step(in core.InputFrame, ctx core.TickContext) core.StepResult

	// Render draws the current state onto the surface in world units.
	// The surface is pre-cleared before this call.
	Render(dst core.Surface, skin core.Skin)

	// State returns the current score and game-over flag.
	State() core.GameState
}

// GameInfo contains metadata about a registered minigame.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new minigame instance from runtime settings and tuning.
type Factory func(rt core.RuntimeConfig, cfg config.Config) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a minigame factory to the registry.
// Typically called from a minigame's init() function.
// Panics if a minigame with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(core.DefaultConfig(), config.Default())
	titles[id] = g.Title()
}

// List returns information about all registered minigames, sorted by ID.
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

// Create instantiates a new minigame by its ID.
// Returns an error if the ID is not registered.
func Create(id string, rt core.RuntimeConfig, cfg config.Config) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(rt, cfg), nil
}

// CreateAll instantiates every registered minigame in List order.
func CreateAll(rt core.RuntimeConfig, cfg config.Config) []Game {
	infos := List()
	games := make([]Game, 0, len(infos))
	for _, info := range infos {
		g, err := Create(info.ID, rt, cfg)
		if err != nil {
			continue
		}
		games = append(games, g)
	}
	return games
}

// Exists checks if a minigame with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
