package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rocket-run/internal/core"
	"github.com/vovakirdan/rocket-run/internal/registry"
)

type screenState int

const (
	screenMenu screenState = iota
	screenGame
	screenScores
)

// SessionModel is the top-level model: title screen, game and scoreboard.
// It is used for local play and for every SSH connection.
type SessionModel struct {
	gameID     string
	opts       Options
	config     core.RuntimeConfig
	state      screenState
	menu       MenuModel
	gameModel  GameModel
	scoreboard ScoreboardModel
	quitting   bool
	err        error
}

// NewSessionModel creates a session for gameID. With skipMenu the game
// starts right away and the title screen is only reached via back.
func NewSessionModel(gameID string, opts Options, cfg core.RuntimeConfig, skipMenu bool) SessionModel {
	m := SessionModel{
		gameID: gameID,
		opts:   opts.withDefaults(),
		config: cfg,
	}
	if skipMenu {
		m.startGame()
	} else {
		m.openMenu()
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.state == screenGame {
		return m.gameModel.Init()
	}
	return nil
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, _ := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Chosen() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case ChoicePlay:
		if !m.startGame() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.gameModel.Init()
	case ChoiceScores:
		m.scoreboard = NewScoreboardModel(m.opts.Scores, m.gameID, registry.Title(m.gameID), m.config.ScreenW, m.config.ScreenH)
		m.state = screenScores
	}
	return m, nil
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	m.gameModel = next.(GameModel)

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		m.opts.Sound.SetMusicPaused(true)
		m.openMenu()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.openMenu()
		return m, nil
	}
	return m, cmd
}

// startGame creates a fresh game from the registry.
func (m *SessionModel) startGame() bool {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.err = err
		m.opts.Logger.Error("cannot start game", "game", m.gameID, "error", err)
		return false
	}

	// A zero seed gives every game a fresh time-based seed
	m.gameModel = NewGameModel(game, m.opts, m.config)
	m.opts.Sound.SetMusicPaused(false)
	m.state = screenGame
	return true
}

func (m *SessionModel) openMenu() {
	best := 0
	if m.opts.Scores != nil {
		if hs, err := m.opts.Scores.HighScore(m.gameID); err == nil {
			best = hs
		}
	}
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH, best)
	m.state = screenMenu
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// Run plays gameID in the local terminal until the player quits. With
// skipMenu the game starts without the title screen.
func Run(gameID string, opts Options, cfg core.RuntimeConfig, skipMenu bool) error {
	model := NewSessionModel(gameID, opts, cfg, skipMenu)
	if model.Err() != nil {
		return model.Err()
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(SessionModel); ok {
		return m.Err()
	}
	return nil
}
