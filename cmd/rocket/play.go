package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-run/internal/core"
	"github.com/vovakirdan/rocket-run/internal/games/rocket"
	"github.com/vovakirdan/rocket-run/internal/platform/tui"
	"github.com/vovakirdan/rocket-run/internal/platform/window"
	"github.com/vovakirdan/rocket-run/internal/registry"
	"github.com/vovakirdan/rocket-run/internal/storage"
)

var flagWindow bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start playing right away, in the terminal or in a desktop window.

Controls:
  Left/A/H     - Steer left
  Right/D/L    - Steer right
  Space/P      - Pause / resume
  R            - Restart
  Esc/B        - Back to the title screen (while paused)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, slower asteroids
  normal - 3 lives, default speeds
  hard   - 2 lives, faster and denser asteroids
  fixed  - No speed-up on level up; level still follows score

Examples:
  rocket play
  rocket play --difficulty easy
  rocket play --window --sound
  rocket play --config ./my-rocket.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects and music")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sound := openSound()
	defer sound.Close()

	cfg := runtimeConfig()
	if !flagWindow {
		logger.Debug("starting terminal game", "fps", cfg.TickRate, "difficulty", flagDifficulty)
		opts := tuiOptions(store)
		opts.Sound = sound
		return tui.Run(rocket.GameID, opts, cfg, true)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Debug("starting window game", "fps", cfg.TickRate, "seed", cfg.Seed, "difficulty", flagDifficulty)

	g, err := registry.Create(rocket.GameID)
	if err != nil {
		return err
	}
	return window.Run(g.(*rocket.Game), window.Config{
		Runtime:    cfg,
		Sound:      sound,
		Logger:     logger,
		OnGameOver: scoreRecorder(store),
	})
}

// scoreRecorder saves each finished window game.
func scoreRecorder(store *storage.Store) func(core.Cue) {
	return func(cue core.Cue) {
		if store == nil || cue.Score <= 0 {
			return
		}
		_, err := store.SaveScore(storage.Result{
			GameID: rocket.GameID,
			Score:  cue.Score,
			Level:  cue.Level,
		})
		if err != nil {
			logger.Warn("could not save score", "error", err)
		}
	}
}
