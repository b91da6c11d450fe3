// Package rocket implements Rocket Run, an avoidance game: the player steers
// a rocket left and right to dodge falling asteroids, scoring points for
// every asteroid that passes and losing a life on each hit.
package rocket

import (
	"github.com/vovakirdan/rocket-run/internal/config"
	"github.com/vovakirdan/rocket-run/internal/core"
	"github.com/vovakirdan/rocket-run/internal/registry"
)

// GameID is the registry identifier and the key scores are stored under.
const GameID = "rocket"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game adapts a Session to the platform's game interface and keeps the few
// presentation-only timers the renderers need.
type Game struct {
	session    *Session
	runtime    core.RuntimeConfig
	cfg        config.RocketConfig
	crashFlash int // Ticks left to draw the craft in the hit color
}

// New creates a new Rocket Run game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that skips file lookup and uses cfg as is.
func NewWithConfig(cfg config.RocketConfig) *Game {
	return &Game{cfg: cfg, session: NewSession(cfg, 0)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rocket Run"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.session == nil {
		cfg, err := config.LoadRocket(configPath)
		if err != nil {
			cfg = config.DefaultRocketConfig()
		}
		if difficultyPreset != "" {
			config.ApplyRocketPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.session = NewSession(g.cfg, runtime.Seed)
	g.crashFlash = 0
}

// Step advances the game by one tick.
// A restart intent resets the session before the tick runs.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.session.Reset()
		g.crashFlash = 0
	}

	result := g.session.Step(in)

	if g.crashFlash > 0 && g.session.Phase() == PhaseRunning {
		g.crashFlash--
	}
	if result.Has(core.CueCrash) {
		g.crashFlash = g.flashTicks()
	}
	if result.Has(core.CueGameOver) {
		g.crashFlash = 0
	}

	return result
}

// flashTicks returns how long the hit highlight lasts: a quarter second.
func (g *Game) flashTicks() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return core.Max(rate/4, 1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return g.session.State()
}

// Session exposes the simulation for renderers that draw in world units.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the game configuration in use.
func (g *Game) Config() config.RocketConfig {
	return g.cfg
}

// Flashing reports whether the craft should be drawn as just hit.
func (g *Game) Flashing() bool {
	return g.crashFlash > 0
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
