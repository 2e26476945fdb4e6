package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// difficultyOption is one row of the difficulty menu.
type difficultyOption struct {
	preset config.DifficultyPreset
	title  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy"},
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyHard, "Hard"},
	{config.DifficultyFixed, "Fixed speed"},
}

// menuKeys are the navigation keys shared by the pre-game menus.
var menuKeys = struct {
	Up, Down, Select, Back, Quit key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
	Select: key.NewBinding(key.WithKeys("enter", " ")),
	Back:   key.NewBinding(key.WithKeys("esc", "b")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// DifficultyModel lets the player pick a speed curve before the game.
type DifficultyModel struct {
	base     config.SnakeConfig
	cursor   int
	width    int
	height   int
	chosen   bool
	quitting bool
}

// NewDifficultyModel creates the menu with the cursor on normal. base is
// the loaded configuration the presets are applied to.
func NewDifficultyModel(base config.SnakeConfig, width, height int) DifficultyModel {
	return DifficultyModel{
		base:   base,
		cursor: 1,
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, menuKeys.Quit), key.Matches(msg, menuKeys.Back):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, menuKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, menuKeys.Down):
			if m.cursor < len(difficultyOptions)-1 {
				m.cursor++
			}
		case key.Matches(msg, menuKeys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the menu.
func (m DifficultyModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		line := fmt.Sprintf("  %-12s %s", opt.title, m.describe(opt.preset))
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %-12s %s", opt.title, m.describe(opt.preset)))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Play  |  Esc/Q: Quit"), m.width))

	return b.String()
}

// describe summarizes the speed curve a preset produces.
func (m DifficultyModel) describe(p config.DifficultyPreset) string {
	cfg := m.base
	config.ApplySnakePreset(&cfg, p)
	if cfg.Speed.StepMS == 0 {
		return fmt.Sprintf("%dms per tick", cfg.Speed.InitialIntervalMS)
	}
	return fmt.Sprintf("%dms -> %dms", cfg.Speed.InitialIntervalMS, cfg.Speed.MinIntervalMS)
}

// Selected returns the configuration with the chosen preset applied, or
// false if the player left the menu.
func (m DifficultyModel) Selected() (config.SnakeConfig, bool) {
	if !m.chosen {
		return config.SnakeConfig{}, false
	}
	cfg := m.base
	config.ApplySnakePreset(&cfg, difficultyOptions[m.cursor].preset)
	return cfg, true
}

// RunDifficultyMenu shows the menu and returns the chosen configuration.
func RunDifficultyMenu(base config.SnakeConfig, width, height int) (config.SnakeConfig, bool, error) {
	p := tea.NewProgram(NewDifficultyModel(base, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return config.SnakeConfig{}, false, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return config.SnakeConfig{}, false, nil
	}
	cfg, chosen := m.Selected()
	return cfg, chosen, nil
}
