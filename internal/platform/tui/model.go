package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket-run/internal/audio"
	"github.com/vovakirdan/rocket-run/internal/core"
	"github.com/vovakirdan/rocket-run/internal/registry"
	"github.com/vovakirdan/rocket-run/internal/storage"
)

// ScoreSaver persists finished games.
type ScoreSaver interface {
	SaveScore(r storage.Result) (int64, error)
	HighScore(gameID string) (int, error)
}

// ScoreStore is everything the terminal screens need from score storage.
// *storage.Store implements it.
type ScoreStore interface {
	ScoreSaver
	ScoreLister
}

// Options carries the collaborators shared by every screen of a session.
// Zero values are valid: no scores, no sound, no logs.
type Options struct {
	Scores ScoreStore
	Sound  audio.Player
	Logger *log.Logger
	Player string // Name stored with scores
}

func (o Options) withDefaults() Options {
	if o.Sound == nil {
		o.Sound = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Player == "" {
		o.Player = storage.LocalPlayer
	}
	return o
}

// GameOverResult is shown in the game-over box until dismissed.
type GameOverResult struct {
	Score   int
	Level   int
	NewBest bool
}

// GameModel runs one game on the fixed tick loop.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	highScore  int
	result     *GameOverResult // Non-nil while the game-over box is open
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. The bottom terminal row is kept
// for the key help line.
func NewGameModel(game registry.Game, opts Options, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	opts = opts.withDefaults()

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		opts:       opts,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW

	if opts.Scores != nil {
		if best, err := opts.Scores.HighScore(game.ID()); err == nil {
			m.highScore = best
		} else {
			opts.Logger.Warn("could not load high score", "error", err)
		}
	}

	// Reset here rather than in Init: Init has a value receiver and the
	// game must be ready before the first View.
	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is in world units, so a resize only rescales it
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.result != nil {
		switch action {
		case core.ActionConfirm, core.ActionPause, core.ActionRestart:
			m.result = nil
		case core.ActionBack:
			m.backToMenu = true
		}
		return m, nil
	}

	switch action {
	case core.ActionNone, core.ActionConfirm:
	case core.ActionBack:
		if m.gameState.Paused {
			m.backToMenu = true
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// The game-over box holds the new session until it is dismissed
	if m.result != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	wasPaused := m.gameState.Paused
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, cue := range result.Cues {
		m.opts.Sound.Play(cue.Kind)
		if cue.Kind == core.CueGameOver {
			m.finish(cue)
		}
	}

	if m.gameState.Paused != wasPaused {
		m.opts.Sound.SetMusicPaused(m.gameState.Paused)
	}

	return m, tickCmd(m.config.TickRate)
}

// finish records a completed game and opens the game-over box.
func (m *GameModel) finish(cue core.Cue) {
	m.result = &GameOverResult{
		Score:   cue.Score,
		Level:   cue.Level,
		NewBest: cue.Score > m.highScore,
	}
	if cue.Score > m.highScore {
		m.highScore = cue.Score
	}

	m.opts.Logger.Info("game over",
		"player", m.opts.Player,
		"score", cue.Score,
		"level", cue.Level,
	)

	if m.opts.Scores == nil || cue.Score <= 0 {
		return
	}
	_, err := m.opts.Scores.SaveScore(storage.Result{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  cue.Score,
		Level:  cue.Level,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.result != nil {
		return m.renderGameOver()
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// renderGameOver draws the final result centered on the terminal.
func (m GameModel) renderGameOver() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	bestStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Final score: %d\n", m.result.Score)
	fmt.Fprintf(&b, "Level reached: %d\n", m.result.Level)
	if m.result.NewBest {
		b.WriteString("\n")
		b.WriteString(bestStyle.Render("New high score!"))
	} else {
		fmt.Fprintf(&b, "\nHigh score: %d", m.highScore)
	}
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Enter: play again  Esc: menu  Q: quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3).
		Align(lipgloss.Center).
		Render(b.String())

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Result returns the open game-over result, or nil while playing.
func (m GameModel) Result() *GameOverResult {
	return m.result
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}
