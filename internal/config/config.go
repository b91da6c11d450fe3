// Package config provides YAML-based game configuration loading and
// difficulty management for Rocket Run.
package config

import "fmt"

// RocketConfig contains all configuration for the Rocket Run game.
type RocketConfig struct {
	Playfield  RocketPlayfield  `yaml:"playfield"`
	Craft      RocketCraft      `yaml:"craft"`
	Obstacles  RocketObstacles  `yaml:"obstacles"`
	Gameplay   RocketGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RocketPlayfield defines the simulated world size in world units.
// Renderers scale it to the terminal or window.
type RocketPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RocketCraft defines the player craft.
type RocketCraft struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Horizontal distance per move intent
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between craft and playfield bottom
}

// RocketObstacles defines falling obstacle parameters.
type RocketObstacles struct {
	MinSize          float64 `yaml:"min_size"`           // Inclusive
	MaxSize          float64 `yaml:"max_size"`           // Exclusive; also the zero-value size for scoring
	Speed            float64 `yaml:"speed"`              // Fall distance per tick
	SpawnInterval    float64 `yaml:"spawn_interval"`     // Base frames between spawns
	MinSpawnInterval int     `yaml:"min_spawn_interval"` // Floor for the effective interval
	ScorePerUnit     float64 `yaml:"score_per_unit"`     // Points per unit below max_size
	Variants         int     `yaml:"variants"`           // Number of cosmetic variants
}

// RocketGameplay defines session rules.
type RocketGameplay struct {
	Lives        int `yaml:"lives"`
	LevelUpScore int `yaml:"level_up_score"`
}

// DifficultyConfig defines the level-up boosts.
type DifficultyConfig struct {
	Enabled             bool    `yaml:"enabled"`               // false keeps speeds fixed; level still tracks score
	CraftSpeedFactor    float64 `yaml:"craft_speed_factor"`    // Craft speed multiplier per level-up
	ObstacleSpeedFactor float64 `yaml:"obstacle_speed_factor"` // Fall speed multiplier per level-up
	SpawnIntervalFactor float64 `yaml:"spawn_interval_factor"` // Base interval multiplier per level-up
	LevelIntervalScale  float64 `yaml:"level_interval_scale"`  // Effective interval divisor growth per level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// An empty value returns "" which means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate reports the first setting that would break the game rules:
// obstacle values must stay non-negative and everything must fit the playfield.
func (c RocketConfig) Validate() error {
	switch {
	case c.Playfield.Height <= 0:
		return fmt.Errorf("playfield.height must be positive, got %g", c.Playfield.Height)
	case c.Craft.Width <= 0 || c.Craft.Height <= 0:
		return fmt.Errorf("craft size must be positive, got %gx%g", c.Craft.Width, c.Craft.Height)
	case c.Craft.Speed <= 0:
		return fmt.Errorf("craft.speed must be positive, got %g", c.Craft.Speed)
	case c.Craft.BottomMargin < 0:
		return fmt.Errorf("craft.bottom_margin must not be negative, got %g", c.Craft.BottomMargin)
	case c.Obstacles.MinSize <= 0 || c.Obstacles.MinSize >= c.Obstacles.MaxSize:
		return fmt.Errorf("obstacles need 0 < min_size < max_size, got %g and %g", c.Obstacles.MinSize, c.Obstacles.MaxSize)
	case c.Playfield.Width < max(c.Craft.Width, c.Obstacles.MaxSize):
		return fmt.Errorf("playfield.width %g is narrower than the craft or the largest obstacle", c.Playfield.Width)
	case c.Craft.Height+c.Craft.BottomMargin > c.Playfield.Height:
		return fmt.Errorf("craft does not fit in playfield.height %g", c.Playfield.Height)
	case c.Obstacles.Speed <= 0:
		return fmt.Errorf("obstacles.speed must be positive, got %g", c.Obstacles.Speed)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("obstacles.spawn_interval must be positive, got %g", c.Obstacles.SpawnInterval)
	case c.Obstacles.MinSpawnInterval < 1:
		return fmt.Errorf("obstacles.min_spawn_interval must be at least 1, got %d", c.Obstacles.MinSpawnInterval)
	case c.Obstacles.ScorePerUnit < 0:
		return fmt.Errorf("obstacles.score_per_unit must not be negative, got %g", c.Obstacles.ScorePerUnit)
	case c.Obstacles.Variants < 1:
		return fmt.Errorf("obstacles.variants must be at least 1, got %d", c.Obstacles.Variants)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives)
	case c.Gameplay.LevelUpScore < 1:
		return fmt.Errorf("gameplay.level_up_score must be at least 1, got %d", c.Gameplay.LevelUpScore)
	case c.Difficulty.CraftSpeedFactor <= 0 || c.Difficulty.ObstacleSpeedFactor <= 0 || c.Difficulty.SpawnIntervalFactor <= 0:
		return fmt.Errorf("difficulty factors must be positive")
	case c.Difficulty.LevelIntervalScale < 0:
		return fmt.Errorf("difficulty.level_interval_scale must not be negative, got %g", c.Difficulty.LevelIntervalScale)
	}
	return nil
}
