package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// KeyMap defines the key bindings while playing.
type KeyMap struct {
	Run     key.Binding
	Jump    key.Binding
	Slide   key.Binding
	Pause   key.Binding
	NewGame key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Jump, k.Slide, k.Pause, k.NewGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Jump, k.Slide},
		{k.Pause, k.NewGame, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Run: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "run"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "k"),
			key.WithHelp("space", "jump"),
		),
		Slide: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "slide"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// GameKey translates a key message to the game's key code.
// Returns false for keys the game itself does not read.
func (k KeyMap) GameKey(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, k.Run):
		return core.KeyArrowRight, true
	case key.Matches(msg, k.Jump):
		return core.KeySpace, true
	case key.Matches(msg, k.Slide):
		return core.KeyArrowDown, true
	}
	return "", false
}
