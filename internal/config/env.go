package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds process-level options that can be set from the environment.
// CLI flags default to these values, so an explicit flag still wins.
type Settings struct {
	DBPath      string `env:"ROCKET_DB"       envDefault:"~/.rocket/scores.db"`
	TickRate    int    `env:"ROCKET_FPS"      envDefault:"60"`
	Seed        int64  `env:"ROCKET_SEED"     envDefault:"0"`
	SSHAddress  string `env:"ROCKET_SSH_ADDR" envDefault:":23234"`
	HostKeyPath string `env:"ROCKET_HOST_KEY"`
	LogFile     string `env:"ROCKET_LOG_FILE"`
	Debug       bool   `env:"ROCKET_DEBUG"`
}

// LoadSettings reads Settings from ROCKET_* environment variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return DefaultSettings(), fmt.Errorf("config: parse env: %w", err)
	}
	return s, nil
}

// DefaultSettings returns the settings used when the environment is empty.
func DefaultSettings() Settings {
	return Settings{
		DBPath:     "~/.rocket/scores.db",
		TickRate:   60,
		SSHAddress: ":23234",
	}
}
