package reaction

import "fmt"

// View is what the renderer needs to draw one frame: a status line and,
// while a round is live, the side to highlight.
type View struct {
	Text    string
	Side    Side
	HasSide bool
}

// Highlight returns the highlighted side, if any.
func (v View) Highlight() (Side, bool) {
	return v.Side, v.HasSide
}

// Project maps a state to its view. It has no side effects.
func Project(s State) View {
	switch s := s.(type) {
	case Init:
		return View{Text: "Press <Space> to start"}
	case Preparing:
		// The side is drawn only when the countdown ends, and nothing here
		// may hint at it.
		return View{Text: fmt.Sprintf("time to start: %.2f", s.TimeToStart)}
	case Running:
		return View{
			Text:    fmt.Sprintf("elapsed time: %.2f", s.ElapsedTime),
			Side:    s.Side,
			HasSide: true,
		}
	case Result:
		verdict := "lose"
		if s.Correct() {
			verdict = "win"
		}
		return View{Text: fmt.Sprintf("You %s! Elapsed time: %.2f", verdict, s.ElapsedTime)}
	case FalseStart:
		return View{Text: "False start!"}
	default:
		return View{}
	}
}
