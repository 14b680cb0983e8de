package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/leftright/internal/config"
	"github.com/vovakirdan/leftright/internal/core"
)

func TestKeyMapDefaults(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")}, core.ActionRight},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, km.Action(tc.msg))
		})
	}
}

func TestKeyMapCustom(t *testing.T) {
	keys := config.Default().Keys
	keys.Left = []string{"a"}
	keys.Right = []string{"d"}
	keys.Screenshot = nil
	km := NewKeyMap(keys)

	assert.Equal(t, core.ActionLeft, km.Action(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}))
	assert.Equal(t, core.ActionRight, km.Action(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}))
	assert.Equal(t, core.ActionNone, km.Action(tea.KeyMsg{Type: tea.KeyLeft}))
	assert.Equal(t, core.ActionNone, km.Action(tea.KeyMsg{Type: tea.KeyCtrlS}))
	assert.False(t, km.Screenshot.Enabled())
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	short := km.ShortHelp()
	assert.Len(t, short, 4)
	assert.Equal(t, "space", short[0].Help().Key)
	assert.Equal(t, "left/h", short[1].Help().Key)

	assert.Len(t, km.FullHelp(), 2)
}
