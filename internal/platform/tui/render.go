package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/leftright/internal/config"
	"github.com/vovakirdan/leftright/internal/core"
)

// Palette maps palette roles to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the styles for a theme.
func NewPalette(t config.Theme) Palette {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{
		core.ColorDefault:  lipgloss.NewStyle(),
		core.ColorText:     fg(t.Text).Bold(true),
		core.ColorPanel:    fg(t.Panel),
		core.ColorPanelLit: fg(t.PanelLit),
		core.ColorPanelDim: fg(t.PanelDim),
		core.ColorHint:     fg(t.Hint),
	}
}

// Style returns the style for a role, falling back to the default style.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if style, ok := p[c]; ok {
		return style
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
