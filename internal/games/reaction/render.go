package reaction

import "github.com/vovakirdan/leftright/internal/core"

// Visual characters for rendering
const (
	PanelChar = '█'
)

// Layout is where a frame's elements go on a screen of a given size.
type Layout struct {
	TextX, TextY int
	Left, Right  core.Rect
}

// NewLayout scales padding with the screen width: a status line at the top
// and two equal panels below it, side by side.
// Terminal cells are about twice as tall as wide, so vertical padding is
// half the horizontal one.
func NewLayout(width, height int) Layout {
	padX := core.Max(1, width/25)
	padY := core.Max(1, padX/2)

	textY := core.Min(padY, core.Max(0, height-1))
	panelTop := textY + 1 + padY
	area := core.NewRect(padX, panelTop, width-2*padX, height-panelTop-padY)
	if area.Empty() {
		return Layout{TextX: padX, TextY: textY}
	}

	left, right := area.SplitH(padX)
	return Layout{TextX: padX, TextY: textY, Left: left, Right: right}
}

// panelColors returns the colors of the left and right panels for a view.
func panelColors(v View) (core.Color, core.Color) {
	side, ok := v.Highlight()
	switch {
	case !ok:
		return core.ColorPanel, core.ColorPanel
	case side == SideLeft:
		return core.ColorPanelLit, core.ColorPanelDim
	default:
		return core.ColorPanelDim, core.ColorPanelLit
	}
}

// Draw renders a view onto dst. The screen is cleared first.
func Draw(dst *core.Screen, v View) {
	dst.Clear()
	l := NewLayout(dst.Width(), dst.Height())

	leftColor, rightColor := panelColors(v)
	dst.DrawRect(l.Left, PanelChar, leftColor)
	dst.DrawRect(l.Right, PanelChar, rightColor)

	dst.DrawText(l.TextX, l.TextY, v.Text, core.ColorText)
}
