package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/leftright/internal/config"
	"github.com/vovakirdan/leftright/internal/core"
)

// KeyMap translates Bubble Tea key messages to actions.
// Bindings come from configuration, so nothing here hardcodes a key.
type KeyMap struct {
	Start      key.Binding
	Left       key.Binding
	Right      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(k config.Keys) KeyMap {
	return KeyMap{
		Start:      binding(k.Start, "start"),
		Left:       binding(k.Left, "left"),
		Right:      binding(k.Right, "right"),
		Quit:       binding(k.Quit, "quit"),
		Screenshot: binding(k.Screenshot, "screenshot"),
	}
}

func binding(keys []string, desc string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(config.KeyLabels(keys), desc),
	)
}

// Action returns the action bound to msg, or ActionNone.
func (km KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.Start):
		return core.ActionStart
	case key.Matches(msg, km.Left):
		return core.ActionLeft
	case key.Matches(msg, km.Right):
		return core.ActionRight
	case key.Matches(msg, km.Screenshot):
		return core.ActionScreenshot
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Start, km.Left, km.Right, km.Quit}
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Start, km.Left, km.Right},
		{km.Screenshot, km.Quit},
	}
}
