package core

// Color is the palette role of a screen cell.
// The platform layer resolves roles to concrete terminal colors from the theme,
// so games never deal with ANSI codes.
type Color uint8

// Palette roles used by games.
const (
	ColorDefault  Color = iota
	ColorText           // Status line
	ColorPanel          // Choice panel, nothing highlighted
	ColorPanelLit       // Highlighted choice panel
	ColorPanelDim       // The panel opposite the highlighted one
	ColorHint           // Secondary text, help footer
)

// String returns the role name, mostly for test failure messages.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorText:
		return "text"
	case ColorPanel:
		return "panel"
	case ColorPanelLit:
		return "panel_lit"
	case ColorPanelDim:
		return "panel_dim"
	case ColorHint:
		return "hint"
	default:
		return "unknown"
	}
}
