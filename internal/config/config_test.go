package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// Keep the YAML shipped in the binary in sync with DefaultRocketConfig.
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, err := LoadRocket("")
	if err != nil {
		t.Fatalf("LoadRocket() failed: %v", err)
	}
	if cfg != DefaultRocketConfig() {
		t.Errorf("embedded config differs from defaults:\n got  %+v\n want %+v", cfg, DefaultRocketConfig())
	}
	if len(GetDefaultYAML("rocket")) == 0 {
		t.Error("GetDefaultYAML(rocket) should return embedded bytes")
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("GetDefaultYAML should return nil for unknown games")
	}
}

func TestLoadRocketCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocket.yaml")
	data := []byte("gameplay:\n  lives: 7\nobstacles:\n  speed: 3.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRocket(path)
	if err != nil {
		t.Fatalf("LoadRocket() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Obstacles.Speed != 3.5 {
		t.Errorf("Obstacles.Speed = %f, expected 3.5", cfg.Obstacles.Speed)
	}
	// Untouched keys keep their defaults
	if cfg.Gameplay.LevelUpScore != 1000 {
		t.Errorf("LevelUpScore = %d, expected default 1000", cfg.Gameplay.LevelUpScore)
	}
	if cfg.Craft.Width != 50 {
		t.Errorf("Craft.Width = %f, expected default 50", cfg.Craft.Width)
	}
}

func TestLoadRocketErrors(t *testing.T) {
	if _, err := LoadRocket(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadRocket() with a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("gameplay: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRocket(path); err == nil {
		t.Error("LoadRocket() with invalid YAML should fail")
	}
}

func TestLoadRocketSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	// Local file only
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "rocket.yaml"), []byte("gameplay:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadRocket("")
	if err != nil {
		t.Fatalf("LoadRocket() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("local config: Lives = %d, expected 4", cfg.Gameplay.Lives)
	}

	// User file wins over local
	userDir := filepath.Join(home, ".rocket", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "rocket.yaml"), []byte("gameplay:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadRocket("")
	if err != nil {
		t.Fatalf("LoadRocket() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("user config: Lives = %d, expected 9", cfg.Gameplay.Lives)
	}
}

func TestApplyRocketPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		lives        int
		speed        float64
		interval     float64
		boostEnabled bool
	}{
		{"", 3, 2, 100, true},
		{DifficultyNormal, 3, 2, 100, true},
		{DifficultyEasy, 5, 1.6, 100, true},
		{DifficultyHard, 2, 2.5, 80, true},
		{DifficultyFixed, 3, 2, 100, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRocketConfig()
			ApplyRocketPreset(&cfg, tc.preset)

			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if diff := cfg.Obstacles.Speed - tc.speed; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Obstacles.Speed = %f, expected %f", cfg.Obstacles.Speed, tc.speed)
			}
			if diff := cfg.Obstacles.SpawnInterval - tc.interval; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("SpawnInterval = %f, expected %f", cfg.Obstacles.SpawnInterval, tc.interval)
			}
			if cfg.Difficulty.Enabled != tc.boostEnabled {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.boostEnabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		"normal": DifficultyNormal,
		"hard":   DifficultyHard,
		"fixed":  DifficultyFixed,
		"":       "",
	}
	for in, want := range tests {
		got, err := ParsePreset(in)
		if err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", in, got, want)
		}
	}

	for _, in := range []string{"insane", "EASY", "hrad"} {
		if _, err := ParsePreset(in); err == nil {
			t.Errorf("ParsePreset(%q) should fail", in)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RocketConfig)
	}{
		{"min size above max", func(c *RocketConfig) { c.Obstacles.MinSize, c.Obstacles.MaxSize = 80, 60 }},
		{"min size equal to max", func(c *RocketConfig) { c.Obstacles.MinSize = c.Obstacles.MaxSize }},
		{"zero min size", func(c *RocketConfig) { c.Obstacles.MinSize = 0 }},
		{"negative score per unit", func(c *RocketConfig) { c.Obstacles.ScorePerUnit = -1 }},
		{"zero playfield width", func(c *RocketConfig) { c.Playfield.Width = 0 }},
		{"playfield narrower than craft", func(c *RocketConfig) { c.Craft.Width = c.Playfield.Width + 1 }},
		{"playfield narrower than obstacle", func(c *RocketConfig) { c.Playfield.Width = c.Obstacles.MaxSize - 1 }},
		{"zero playfield height", func(c *RocketConfig) { c.Playfield.Height = 0 }},
		{"craft taller than playfield", func(c *RocketConfig) { c.Craft.Height = c.Playfield.Height }},
		{"zero craft speed", func(c *RocketConfig) { c.Craft.Speed = 0 }},
		{"zero fall speed", func(c *RocketConfig) { c.Obstacles.Speed = 0 }},
		{"zero spawn interval", func(c *RocketConfig) { c.Obstacles.SpawnInterval = 0 }},
		{"zero min spawn interval", func(c *RocketConfig) { c.Obstacles.MinSpawnInterval = 0 }},
		{"no variants", func(c *RocketConfig) { c.Obstacles.Variants = 0 }},
		{"no lives", func(c *RocketConfig) { c.Gameplay.Lives = 0 }},
		{"zero level-up score", func(c *RocketConfig) { c.Gameplay.LevelUpScore = 0 }},
		{"zero craft factor", func(c *RocketConfig) { c.Difficulty.CraftSpeedFactor = 0 }},
		{"negative obstacle factor", func(c *RocketConfig) { c.Difficulty.ObstacleSpeedFactor = -1.1 }},
		{"zero interval factor", func(c *RocketConfig) { c.Difficulty.SpawnIntervalFactor = 0 }},
		{"negative interval scale", func(c *RocketConfig) { c.Difficulty.LevelIntervalScale = -0.2 }},
	}

	if err := DefaultRocketConfig().Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRocketConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() accepted %+v", cfg)
			}
		})
	}

	// Edge values that are still playable
	edge := DefaultRocketConfig()
	edge.Craft.Width = edge.Playfield.Width
	edge.Obstacles.ScorePerUnit = 0
	edge.Obstacles.Variants = 1
	edge.Gameplay.Lives = 1
	if err := edge.Validate(); err != nil {
		t.Errorf("edge config rejected: %v", err)
	}
}

func TestLoadRocketRejectsInvalidCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocket.yaml")
	data := []byte("obstacles:\n  min_size: 80\n  max_size: 60\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRocket(path)
	if err == nil {
		t.Fatal("LoadRocket() should reject obstacles with min_size above max_size")
	}
	if !strings.Contains(err.Error(), "invalid "+path) {
		t.Errorf("error should name the file: %v", err)
	}
	if cfg != DefaultRocketConfig() {
		t.Errorf("rejected load should return defaults, got %+v", cfg)
	}
}

func TestLoadRocketSkipsInvalidUserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	userDir := filepath.Join(home, ".rocket", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "rocket.yaml"), []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "rocket.yaml"), []byte("gameplay:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRocket("")
	if err != nil {
		t.Fatalf("LoadRocket() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("invalid user file should fall through to local config, Lives = %d", cfg.Gameplay.Lives)
	}
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("ROCKET_DB", "/tmp/custom.db")
	t.Setenv("ROCKET_FPS", "30")
	t.Setenv("ROCKET_SEED", "42")
	t.Setenv("ROCKET_DEBUG", "true")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if s.DBPath != "/tmp/custom.db" {
		t.Errorf("DBPath = %q, expected /tmp/custom.db", s.DBPath)
	}
	if s.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", s.TickRate)
	}
	if s.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", s.Seed)
	}
	if !s.Debug {
		t.Error("Debug should be true")
	}
	if s.SSHAddress != ":23234" {
		t.Errorf("SSHAddress = %q, expected default :23234", s.SSHAddress)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	t.Setenv("ROCKET_FPS", "fast")

	s, err := LoadSettings()
	if err == nil {
		t.Fatal("LoadSettings() should fail on a non-numeric ROCKET_FPS")
	}
	if s != DefaultSettings() {
		t.Errorf("invalid env should fall back to defaults, got %+v", s)
	}
}
