package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry on the title screen.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

var menuItems = []struct {
	choice MenuChoice
	label  string
}{
	{ChoicePlay, "Start"},
	{ChoiceScores, "High Scores"},
	{ChoiceQuit, "Quit"},
}

const titleArt = `
 ___  ___   ___ _  _____ _____   ___ _   _ _  _
| _ \/ _ \ / __| |/ / __|_   _| | _ \ | | | \| |
|   / (_) | (__| ' <| _|  | |   |   / |_| | .' |
|_|_\\___/ \___|_|\_\___| |_|   |_|_\\___/|_|\_|`

// MenuModel is the title screen.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	highScore int
	keys      KeyMap
	chosen    MenuChoice
}

// NewMenuModel creates a title screen showing the current high score.
func NewMenuModel(width, height, highScore int) MenuModel {
	return MenuModel{
		width:     width,
		height:    height,
		highScore: highScore,
		keys:      DefaultKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.MenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.chosen = ChoiceQuit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.chosen = menuItems[m.cursor].choice
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimPrefix(titleArt, "\n"), "\n") {
		b.WriteString(centerText(titleStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.label
		if i == m.cursor {
			line = activeStyle.Render("> " + item.label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Dodge the asteroids. ←/→ to steer, Space to pause."), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the selected entry, or ChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}
