package rocket

import (
	"github.com/vovakirdan/rocket-run/internal/config"
	"github.com/vovakirdan/rocket-run/internal/core"
)

// Phase is the session state machine position.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session holds the complete simulation state of one game.
// It is advanced one tick at a time by Step and has no knowledge of
// rendering, audio or wall-clock time.
type Session struct {
	cfg     config.RocketConfig
	curve   *config.DifficultyCurve
	spawner *Spawner

	craft     Craft
	obstacles []Obstacle

	score int
	lives int
	level int // Always floor(score/levelUpScore)+1 after a step
	tier  int // Level-up boosts applied so far, plus one

	fallSpeed    float64 // Shared obstacle fall speed
	baseInterval float64 // Base spawn interval before level scaling
	frame        uint64
	phase        Phase
}

// NewSession creates a running session. The seed drives obstacle generation.
func NewSession(cfg config.RocketConfig, seed int64) *Session {
	s := &Session{
		cfg:     cfg,
		curve:   config.NewDifficultyCurve(cfg),
		spawner: NewSpawner(seed, cfg.Obstacles),
	}
	s.Reset()
	return s
}

// Reset starts a fresh running session with base speeds and frequency.
// The obstacle RNG keeps its stream so consecutive games differ.
func (s *Session) Reset() {
	pf := s.cfg.Playfield
	s.craft = Craft{
		X:     pf.Width/2 - s.cfg.Craft.Width/2,
		Y:     pf.Height - s.cfg.Craft.Height - s.cfg.Craft.BottomMargin,
		W:     s.cfg.Craft.Width,
		H:     s.cfg.Craft.Height,
		Speed: s.cfg.Craft.Speed,
	}
	s.obstacles = s.obstacles[:0]
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.level = 1
	s.tier = 1
	s.fallSpeed = s.cfg.Obstacles.Speed
	s.baseInterval = s.cfg.Obstacles.SpawnInterval
	s.frame = 0
	s.phase = PhaseRunning
}

// TogglePause switches between running and paused.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhaseRunning:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhaseRunning
	}
}

// Step advances the simulation by one tick.
//
// A pause intent is applied first; a tick that unpauses runs the simulation
// immediately. While paused nothing else changes, including the frame
// counter and the craft position.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if s.phase != PhaseRunning {
		return core.StepResult{State: s.State()}
	}

	var cues []core.Cue
	levelBefore := s.level

	// Movement intents from the input adapter
	maxX := s.cfg.Playfield.Width - s.craft.W
	if in.Has(core.ActionMoveLeft) {
		s.craft.Move(-1, maxX)
	}
	if in.Has(core.ActionMoveRight) {
		s.craft.Move(1, maxX)
	}

	// At most one compounding boost per tick; later ticks catch up
	if s.curve.ShouldLevelUp(s.score, s.tier) {
		s.tier++
		s.craft.Speed, s.fallSpeed, s.baseInterval = s.curve.Boost(s.craft.Speed, s.fallSpeed, s.baseInterval)
	}

	interval := s.curve.SpawnInterval(s.baseInterval, s.level)
	if s.frame%uint64(interval) == 0 {
		s.obstacles = append(s.obstacles, s.spawner.Spawn(s.cfg.Playfield.Width))
	}

	craftBox := s.craft.Box()
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Y += s.fallSpeed

		// Passing the bottom edge takes precedence over a collision
		if o.Y > s.cfg.Playfield.Height {
			s.score += o.ScoreValue
			cues = append(cues, core.Cue{Kind: core.CuePass, Score: s.score, Level: s.level})
			continue
		}

		box := o.Box()
		if core.Intersects(&craftBox, &box) {
			s.lives--
			if s.lives <= 0 {
				return s.finish(cues)
			}
			cues = append(cues, core.Cue{Kind: core.CueCrash, Score: s.score, Level: s.level})
			continue
		}

		kept = append(kept, o)
	}
	s.obstacles = kept

	s.frame++
	s.level = s.curve.Level(s.score)
	if s.level > levelBefore {
		cues = append(cues, core.Cue{Kind: core.CueLevelUp, Score: s.score, Level: s.level})
	}

	return core.StepResult{State: s.State(), Cues: cues}
}

// finish ends the session on the last life and starts a new one.
// The returned state is the fresh session; the final result travels in the
// game-over cue.
func (s *Session) finish(cues []core.Cue) core.StepResult {
	s.phase = PhaseGameOver
	cues = append(cues, core.Cue{
		Kind:  core.CueGameOver,
		Score: s.score,
		Level: s.curve.Level(s.score),
	})
	s.Reset()
	return core.StepResult{State: s.State(), Cues: cues}
}

// State returns the platform-facing summary of the session.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Lives:    s.lives,
		Level:    s.level,
		GameOver: s.phase == PhaseGameOver,
		Paused:   s.phase == PhasePaused,
	}
}

// Craft returns a copy of the player craft.
func (s *Session) Craft() Craft {
	return s.craft
}

// Obstacles returns the live obstacles. The slice is owned by the session
// and only valid until the next Step.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles
}

// Playfield returns the world size.
func (s *Session) Playfield() (width, height float64) {
	return s.cfg.Playfield.Width, s.cfg.Playfield.Height
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// SpawnInterval returns the effective frames between spawns at the current level.
func (s *Session) SpawnInterval() int {
	return s.curve.SpawnInterval(s.baseInterval, s.level)
}
