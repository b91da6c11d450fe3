package rocket

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/rocket-run/internal/config"
	"github.com/vovakirdan/rocket-run/internal/core"
)

func newTestSession(seed int64) *Session {
	return NewSession(config.DefaultRocketConfig(), seed)
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestScoreValue(t *testing.T) {
	tests := []struct {
		size float64
		want int
	}{
		{20, 400},
		{45, 150},
		{45.04, 150},
		{59.5, 5},
		{60, 0},
	}

	for _, tt := range tests {
		if got := ScoreValue(tt.size, 60, 10); got != tt.want {
			t.Errorf("ScoreValue(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestScoreValueDecreasesWithSize(t *testing.T) {
	prev := ScoreValue(20, 60, 10)
	for size := 21.0; size < 60; size++ {
		v := ScoreValue(size, 60, 10)
		if v >= prev {
			t.Fatalf("ScoreValue(%v) = %d, not below %d", size, v, prev)
		}
		prev = v
	}
}

func TestSpawnBounds(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	sp := NewSpawner(7, cfg.Obstacles)

	for i := 0; i < 2000; i++ {
		o := sp.Spawn(cfg.Playfield.Width)

		if o.Size < 20 || o.Size >= 60 {
			t.Fatalf("size %v outside [20,60)", o.Size)
		}
		if o.X < 0 || o.X > cfg.Playfield.Width-o.Size {
			t.Fatalf("x %v outside [0,%v]", o.X, cfg.Playfield.Width-o.Size)
		}
		if o.Y != -o.Size {
			t.Fatalf("y = %v, want %v", o.Y, -o.Size)
		}
		if o.Variant < 0 || o.Variant >= 4 {
			t.Fatalf("variant %d outside [0,4)", o.Variant)
		}
		if o.ScoreValue != ScoreValue(o.Size, 60, 10) {
			t.Fatalf("score value %d does not match size %v", o.ScoreValue, o.Size)
		}
	}
}

func TestSpawnNarrowPlayfield(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	sp := NewSpawner(1, cfg.Obstacles)

	o := sp.Spawn(10)
	if o.X != 0 {
		t.Errorf("obstacle wider than playfield should sit at x=0, got %v", o.X)
	}
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(1)

	state := s.State()
	if state.Score != 0 || state.Lives != 3 || state.Level != 1 {
		t.Errorf("initial state = %+v, want score 0, lives 3, level 1", state)
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("initial phase = %v, want running", s.Phase())
	}

	c := s.Craft()
	if c.X != 215 || c.Y != 580 {
		t.Errorf("craft at (%v,%v), want (215,580)", c.X, c.Y)
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("expected no obstacles, got %d", len(s.Obstacles()))
	}
}

func TestStepSpawnsOnFirstTick(t *testing.T) {
	s := newTestSession(1)
	s.Step(core.NewInputFrame())

	if len(s.Obstacles()) != 1 {
		t.Fatalf("expected 1 obstacle after first tick, got %d", len(s.Obstacles()))
	}
	o := s.Obstacles()[0]
	if o.Y != -o.Size+2 {
		t.Errorf("obstacle should have fallen once: y = %v, want %v", o.Y, -o.Size+2)
	}
	if s.Snapshot().Tick != 1 {
		t.Errorf("frame = %d, want 1", s.Snapshot().Tick)
	}
}

func TestStepSpawnInterval(t *testing.T) {
	s := newTestSession(1)

	// Level 1: floor(100 / 1.2) = 83
	if got := s.SpawnInterval(); got != 83 {
		t.Fatalf("spawn interval = %d, want 83", got)
	}

	for i := 0; i < 83; i++ {
		s.Step(core.NewInputFrame())
	}
	if len(s.Obstacles()) != 1 {
		t.Fatalf("expected 1 obstacle before the second spawn, got %d", len(s.Obstacles()))
	}
	s.Step(core.NewInputFrame())
	if len(s.Obstacles()) != 2 {
		t.Errorf("expected 2 obstacles at frame 83, got %d", len(s.Obstacles()))
	}
}

func TestStepPassScores(t *testing.T) {
	s := newTestSession(1)
	s.frame = 1 // Skip the spawn
	s.score = 500
	s.obstacles = []Obstacle{{X: 0, Y: 640, Size: 45, ScoreValue: 150}}

	result := s.Step(core.NewInputFrame())

	if result.State.Score != 650 {
		t.Errorf("score = %d, want 650", result.State.Score)
	}
	if !result.Has(core.CuePass) {
		t.Error("expected pass cue")
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("passed obstacle should be removed, %d left", len(s.Obstacles()))
	}
}

func TestStepCollisionCostsLife(t *testing.T) {
	s := newTestSession(1)
	s.frame = 1
	s.craft.X, s.craft.Y = 100, 100
	s.obstacles = []Obstacle{{X: 110, Y: 110, Size: 30, ScoreValue: 300}}

	result := s.Step(core.NewInputFrame())

	if result.State.Lives != 2 {
		t.Errorf("lives = %d, want 2", result.State.Lives)
	}
	if !result.Has(core.CueCrash) {
		t.Error("expected crash cue")
	}
	if result.State.Score != 0 {
		t.Errorf("collision should not score, got %d", result.State.Score)
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("colliding obstacle should be removed, %d left", len(s.Obstacles()))
	}
}

func TestStepPassTakesPrecedenceOverCollision(t *testing.T) {
	s := newTestSession(1)
	s.frame = 1
	s.craft.Y = 620 // Craft reaches below the playfield bottom
	s.obstacles = []Obstacle{{X: s.craft.X, Y: 639, Size: 30, ScoreValue: 300}}

	result := s.Step(core.NewInputFrame())

	if result.State.Lives != 3 {
		t.Errorf("lives = %d, want 3", result.State.Lives)
	}
	if result.State.Score != 300 {
		t.Errorf("score = %d, want 300", result.State.Score)
	}
	if result.Has(core.CueCrash) {
		t.Error("passed obstacle must not also collide")
	}
}

func TestStepGameOverResets(t *testing.T) {
	s := newTestSession(1)
	s.frame = 1
	s.score = 1234
	s.level = 2
	s.lives = 1
	s.craft.X, s.craft.Y = 100, 100
	s.obstacles = []Obstacle{
		{X: 110, Y: 110, Size: 30},
		{X: 300, Y: 10, Size: 30},
	}

	result := s.Step(core.NewInputFrame())

	if !result.Has(core.CueGameOver) {
		t.Fatal("expected game over cue")
	}
	var over core.Cue
	for _, c := range result.Cues {
		if c.Kind == core.CueGameOver {
			over = c
		}
	}
	if over.Score != 1234 || over.Level != 2 {
		t.Errorf("game over cue = %+v, want score 1234 level 2", over)
	}

	state := result.State
	if state.Score != 0 || state.Lives != 3 || state.Level != 1 {
		t.Errorf("state after game over = %+v, want fresh session", state)
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("obstacles should be cleared, got %d", len(s.Obstacles()))
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", s.Phase())
	}
	snap := s.Snapshot()
	if snap.FallSpeed != 2 || snap.BaseInterval != 100 || snap.CraftSpeed != 5 || snap.Boosts != 0 {
		t.Errorf("speeds not reset: %+v", snap)
	}
}

func TestStepLevelInvariant(t *testing.T) {
	s := newTestSession(99)
	pattern := []core.Action{core.ActionMoveLeft, core.ActionNone, core.ActionMoveRight, core.ActionMoveRight}

	for i := 0; i < 20000; i++ {
		result := s.Step(input(pattern[i%len(pattern)]))
		want := result.State.Score/1000 + 1
		if result.State.Level != want {
			t.Fatalf("tick %d: level = %d, want %d (score %d)", i, result.State.Level, want, result.State.Score)
		}
	}
}

func TestStepScoreNeverDecreases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocket.yaml")
	data := []byte("obstacles:\n  min_size: 40\n  max_size: 45\n  speed: 6\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadRocket(path)
	if err != nil {
		t.Fatalf("LoadRocket() failed: %v", err)
	}

	s := NewSession(cfg, 1)
	s.craft.X = 0
	last := 0
	for i := 0; i < 2000; i++ {
		result := s.Step(core.NewInputFrame())
		if result.Has(core.CueGameOver) {
			last = 0
			continue
		}
		if result.State.Score < last {
			t.Fatalf("tick %d: score went from %d to %d", i, last, result.State.Score)
		}
		last = result.State.Score
	}
}

func TestStepLevelUpCompounds(t *testing.T) {
	s := newTestSession(1)
	s.frame = 1
	s.score = 2999
	s.level = 3
	s.obstacles = []Obstacle{{X: 0, Y: 640, Size: 45, ScoreValue: 150}}

	result := s.Step(core.NewInputFrame())

	if result.State.Level != 4 {
		t.Fatalf("level = %d, want 4", result.State.Level)
	}
	if !result.Has(core.CueLevelUp) {
		t.Error("expected level up cue")
	}
	if got := s.Snapshot().Boosts; got != 1 {
		t.Errorf("one boost per tick: got %d", got)
	}

	// Remaining boosts catch up one per tick
	for i := 0; i < 5; i++ {
		s.Step(core.NewInputFrame())
	}

	snap := s.Snapshot()
	if snap.Boosts != 3 {
		t.Fatalf("boosts = %d, want 3", snap.Boosts)
	}
	if math.Abs(snap.CraftSpeed-5*1.1*1.1*1.1) > 1e-9 {
		t.Errorf("craft speed = %v, want %v", snap.CraftSpeed, 5*1.1*1.1*1.1)
	}
	if math.Abs(snap.FallSpeed-2*1.1*1.1*1.1) > 1e-9 {
		t.Errorf("fall speed = %v, want %v", snap.FallSpeed, 2*1.1*1.1*1.1)
	}
	if math.Abs(snap.BaseInterval-100*0.9*0.9*0.9) > 1e-9 {
		t.Errorf("base interval = %v, want %v", snap.BaseInterval, 100*0.9*0.9*0.9)
	}
	// floor(72.9 / (1 + 4*0.2)) = 40
	if snap.SpawnInterval != 40 {
		t.Errorf("spawn interval = %d, want 40", snap.SpawnInterval)
	}
}

func TestStepFixedPresetNoBoost(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	config.ApplyRocketPreset(&cfg, config.DifficultyFixed)
	s := NewSession(cfg, 1)
	s.frame = 1
	s.score = 5000
	s.level = 6

	s.Step(core.NewInputFrame())

	snap := s.Snapshot()
	if snap.Boosts != 0 || snap.FallSpeed != 2 {
		t.Errorf("fixed preset should not boost: %+v", snap)
	}
	if snap.Level != 6 {
		t.Errorf("level should still follow score, got %d", snap.Level)
	}
}

func TestStepMove(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		action core.Action
		wantX  float64
	}{
		{"left", 215, core.ActionMoveLeft, 210},
		{"right", 215, core.ActionMoveRight, 220},
		{"left at edge", 0, core.ActionMoveLeft, 0},
		{"left near edge", 3, core.ActionMoveLeft, 3},
		{"right at edge", 430, core.ActionMoveRight, 430},
		{"right near edge", 428, core.ActionMoveRight, 428},
		{"right onto edge", 425, core.ActionMoveRight, 430},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(1)
			s.craft.X = tt.startX
			s.Step(input(tt.action))
			if s.Craft().X != tt.wantX {
				t.Errorf("craft x = %v, want %v", s.Craft().X, tt.wantX)
			}
		})
	}
}

func TestPauseFreezes(t *testing.T) {
	s := newTestSession(3)
	for i := 0; i < 30; i++ {
		s.Step(core.NewInputFrame())
	}

	result := s.Step(input(core.ActionPause))
	if !result.State.Paused {
		t.Fatal("expected paused state")
	}

	before := s.Snapshot()
	obstacles := append([]Obstacle(nil), s.Obstacles()...)

	for i := 0; i < 50; i++ {
		result := s.Step(input(core.ActionMoveLeft))
		if len(result.Cues) != 0 {
			t.Fatalf("paused tick emitted cues: %v", result.Cues)
		}
	}

	if after := s.Snapshot(); after != before {
		t.Errorf("paused session changed:\nbefore %+v\nafter  %+v", before, after)
	}
	if !reflect.DeepEqual(obstacles, s.Obstacles()) {
		t.Error("obstacles moved while paused")
	}
}

func TestResumeMatchesUninterruptedRun(t *testing.T) {
	paused := newTestSession(5)
	plain := newTestSession(5)

	for i := 0; i < 40; i++ {
		paused.Step(core.NewInputFrame())
		plain.Step(core.NewInputFrame())
	}

	paused.Step(input(core.ActionPause))
	for i := 0; i < 10; i++ {
		paused.Step(core.NewInputFrame())
	}
	paused.Step(input(core.ActionPause)) // Resumes and runs this tick

	plain.Step(core.NewInputFrame())

	if paused.Snapshot() != plain.Snapshot() {
		t.Errorf("snapshots differ:\npaused %+v\nplain  %+v", paused.Snapshot(), plain.Snapshot())
	}
	if !reflect.DeepEqual(paused.Obstacles(), plain.Obstacles()) {
		t.Error("obstacles differ after resume")
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func(seed int64) *Session {
		s := newTestSession(seed)
		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			switch {
			case i%7 == 0:
				in.Set(core.ActionMoveLeft)
			case i%5 == 0:
				in.Set(core.ActionMoveRight)
			}
			s.Step(in)
		}
		return s
	}

	a, b := run(42), run(42)
	if a.Snapshot() != b.Snapshot() {
		t.Errorf("same seed, different snapshots:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}
	if !reflect.DeepEqual(a.Obstacles(), b.Obstacles()) {
		t.Error("same seed, different obstacles")
	}

	c, d := newTestSession(1), newTestSession(2)
	c.Step(core.NewInputFrame())
	d.Step(core.NewInputFrame())
	if reflect.DeepEqual(c.Obstacles(), d.Obstacles()) {
		t.Error("different seeds produced the same first obstacle")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseRunning, "running"},
		{PhasePaused, "paused"},
		{PhaseGameOver, "game_over"},
		{Phase(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
