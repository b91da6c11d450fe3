// rocket is an avoidance arcade game: steer a rocket left and right and
// dodge the falling asteroids. It runs in the terminal, in a desktop window
// or as an SSH server.
//
// Usage:
//
//	rocket                   - Title screen
//	rocket play              - Start a game right away
//	rocket serve             - Start SSH server for remote play
//	rocket scores            - Show high scores
//	rocket sim               - Run the simulation headless and print a snapshot
//	rocket config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.rocket/scores.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Verbose logging
//	--config <path>    - Custom game config YAML
//	--difficulty <p>   - easy, normal, hard or fixed
//
// Every global flag also reads a ROCKET_* environment variable.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rocket-run/internal/audio"
	"github.com/vovakirdan/rocket-run/internal/config"
	"github.com/vovakirdan/rocket-run/internal/core"
	"github.com/vovakirdan/rocket-run/internal/games/rocket"
	"github.com/vovakirdan/rocket-run/internal/platform/tui"
	"github.com/vovakirdan/rocket-run/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool

	// Game flags
	flagConfig     string
	flagDifficulty string
	flagSound      bool

	settings config.Settings
	envErr   error
	logger   = log.New(io.Discard)
	logClose func() error
)

func main() {
	err := rootCmd.Execute()
	closeLog(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocket",
	Short: "Rocket Run - dodge the asteroids",
	Long: `Rocket Run is an avoidance arcade game. Steer your rocket left and
right to dodge falling asteroids. Every asteroid that passes scores
points (small ones are worth more), every hit costs a life, and every
1000 points the game speeds up.

Without a subcommand the title screen opens.

Examples:
  rocket
  rocket play --difficulty hard
  rocket play --window --sound
  rocket serve --ssh :2222
  rocket sim --ticks 5000 --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runTitle,
}

func init() {
	settings, envErr = config.LoadSettings()

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", settings.TickRate, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", settings.Seed, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", settings.DBPath, "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", settings.LogFile, "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", settings.Debug, "Enable debug logging")

	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects and music")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup checks the game flags and builds the root logger. Terminal UIs own
// stdout, so logs go to --log-file or nowhere unless a command asks for
// stderr.
func setup(cmd *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if cmd.Annotations["logs"] == "stderr" {
		out = os.Stderr
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		logClose = f.Close
	}

	logger = newLogger(out, flagDebug)
	if envErr != nil {
		logger.Warn("ignoring invalid environment", "error", envErr)
	}
	return nil
}

// closeLog flushes --log-file and reports a failure to w.
func closeLog(w io.Writer) {
	if logClose == nil {
		return
	}
	if err := logClose(); err != nil {
		fmt.Fprintln(w, "cannot close log file:", err)
	}
	logClose = nil
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rocket",
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// applyGameFlags hands --config and --difficulty to the game package
// before any game is created. A --config file that cannot be loaded is an
// error here rather than a silent fallback to defaults inside the game.
func applyGameFlags() error {
	if _, err := loadGameConfig(); err != nil {
		return err
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	rocket.SetConfigPath(flagConfig)
	rocket.SetDifficultyPreset(preset)
	logger.Debug("game config", "path", flagConfig, "difficulty", preset)
	return nil
}

// loadGameConfig loads the config named by the flags with the preset applied.
func loadGameConfig() (config.RocketConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RocketConfig{}, err
	}
	cfg, err := config.LoadRocket(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyRocketPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. A failure is logged and play goes
// on without scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// tuiOptions wires the collaborators shared by every terminal screen.
func tuiOptions(store *storage.Store) tui.Options {
	opts := tui.Options{Logger: logger}
	if store != nil {
		opts.Scores = store
	}
	return opts
}

func runTitle(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tuiOptions(store)
	opts.Sound = openSound()
	defer opts.Sound.Close()

	return tui.Run(rocket.GameID, opts, runtimeConfig(), false)
}

// openSound opens the speaker when --sound is set. Without an audio device
// the game stays silent.
func openSound() audio.Player {
	player, err := audio.Open(flagSound)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	return player
}
