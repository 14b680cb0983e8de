package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; games never see raw key strings.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Space - start a round (and a false start during the countdown)
	ActionLeft              // Left arrow - choose the left side
	ActionRight             // Right arrow - choose the right side
	ActionQuit              // Esc, Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump the current frame to a file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// IsGameAction reports whether the action is meant for the game itself
// rather than the platform.
func (a Action) IsGameAction() bool {
	switch a {
	case ActionStart, ActionLeft, ActionRight:
		return true
	}
	return false
}
