package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Level    int  // Current level (1-based)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// CueKind identifies a one-shot presentation event.
type CueKind int

const (
	CuePass     CueKind = iota // An obstacle left the playfield and scored
	CueCrash                   // The player lost a life
	CueLevelUp                 // Difficulty increased
	CueGameOver                // The last life was lost
)

// String returns the cue name used by presentation adapters.
func (k CueKind) String() string {
	switch k {
	case CuePass:
		return "pass"
	case CueCrash:
		return "crash"
	case CueLevelUp:
		return "levelup"
	case CueGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Cue is emitted by a game step for the presentation layer to react to.
// Score and Level carry the values at the moment the cue fired, which for
// CueGameOver is the final result of the finished session.
type Cue struct {
	Kind  CueKind
	Score int
	Level int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any cues that fired during the tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}

// Has reports whether a cue of the given kind fired during the step.
func (r StepResult) Has(kind CueKind) bool {
	for _, c := range r.Cues {
		if c.Kind == kind {
			return true
		}
	}
	return false
}
