package config

import (
	_ "embed"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultRocketConfig returns the default Rocket Run configuration.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		Playfield: RocketPlayfield{
			Width:  480,
			Height: 640,
		},
		Craft: RocketCraft{
			Width:        50,
			Height:       50,
			Speed:        5,
			BottomMargin: 10,
		},
		Obstacles: RocketObstacles{
			MinSize:          20,
			MaxSize:          60,
			Speed:            2,
			SpawnInterval:    100,
			MinSpawnInterval: 20,
			ScorePerUnit:     10,
			Variants:         4,
		},
		Gameplay: RocketGameplay{
			Lives:        3,
			LevelUpScore: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:             true,
			CraftSpeedFactor:    1.1,
			ObstacleSpeedFactor: 1.1,
			SpawnIntervalFactor: 0.9,
			LevelIntervalScale:  0.2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rocket":
		return defaultRocketYAML
	default:
		return nil
	}
}
