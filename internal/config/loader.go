package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRocket loads Rocket Run configuration.
// Search order: customPath -> ~/.rocket/configs/rocket.yaml -> ./configs/rocket.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. User and local files that fail to parse or validate are
// skipped.
func LoadRocket(customPath string) (RocketConfig, error) {
	cfg := DefaultRocketConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultRocketConfig(), fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rocket.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultRocketConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "rocket.yaml")); err == nil {
		candidate := DefaultRocketConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRocketYAML, &cfg); err != nil {
		return DefaultRocketConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rocket", "configs", filename)
}

// ApplyRocketPreset modifies the config based on a difficulty preset.
func ApplyRocketPreset(cfg *RocketConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	if preset != "" {
		cfg.Difficulty.Enabled = true
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Obstacles.Speed *= 0.8
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Obstacles.Speed *= 1.25
		cfg.Obstacles.SpawnInterval *= 0.8
	}
}
