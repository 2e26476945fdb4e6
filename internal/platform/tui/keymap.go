package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// KeyMap defines the key bindings for the game screen.
// Game keys come from the controls section of the configuration; the rest
// are fixed.
type KeyMap struct {
	Start      key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Dismiss    key.Binding
	Scoreboard key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Up, k.Down, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Dismiss, k.Scoreboard},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// NewKeyMap builds the bindings from configured key names.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		Start:   binding(c.Start, "start"),
		Up:      binding(c.Up, "up"),
		Down:    binding(c.Down, "down"),
		Left:    binding(c.Left, "left"),
		Right:   binding(c.Right, "right"),
		Dismiss: binding(c.Dismiss, "close"),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DefaultKeyMap returns the bindings of the embedded default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultSnakeConfig().Controls)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keyLabel(keys), desc),
	)
}

// keyLabel joins key names for display: " " is shown as "space" and arrow
// names as glyphs.
func keyLabel(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case " ":
			k = "space"
		case "up":
			k = "↑"
		case "down":
			k = "↓"
		case "left":
			k = "←"
		case "right":
			k = "→"
		}
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}

// Action translates a key message to a game action.
// Quit is checked first so it can never be shadowed by a game binding.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Dismiss):
		return core.ActionDismiss
	case key.Matches(msg, k.Scoreboard):
		return core.ActionScoreboard
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// Hints returns the key names shown in the board's prompts.
func (k KeyMap) Hints() snake.Hints {
	steer := []string{k.Up.Help().Key, k.Left.Help().Key, k.Down.Help().Key, k.Right.Help().Key}
	return snake.Hints{
		Start: titleLabel(k.Start.Help().Key),
		Steer: strings.Join(steer, " "),
	}
}

func titleLabel(s string) string {
	parts := strings.Split(s, "/")
	for i, p := range parts {
		if r := []rune(p); len(r) > 0 {
			parts[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return strings.Join(parts, "/")
}
