// Package reaction implements Left/Right, a reaction-time game.
// After a short countdown one of two panels lights up and the player has to
// press the matching arrow key as fast as possible.
package reaction

import "math"

// StartDelay is the countdown length in seconds.
const StartDelay = 1.0

// Machine owns the game state and applies time deltas and key presses to it.
// It is not safe for concurrent use; the driver delivers one event at a time.
type Machine struct {
	state State
	coin  Coin
}

// NewMachine returns a machine in the Init state.
// A nil coin falls back to NewRandCoin(0). The zero Machine is also usable
// and behaves the same way.
func NewMachine(coin Coin) *Machine {
	return &Machine{state: Init{}, coin: coin}
}

// State returns the current state.
func (m *Machine) State() State {
	if m.state == nil {
		return Init{}
	}
	return m.state
}

func (m *Machine) flip() Side {
	if m.coin == nil {
		m.coin = NewRandCoin(0)
	}
	return m.coin.Flip()
}

// AdvanceTime moves the timed states forward by dt seconds.
// Init, Result and FalseStart discard dt. Negative and non-finite deltas
// are ignored.
func (m *Machine) AdvanceTime(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}

	switch s := m.State().(type) {
	case Preparing:
		remaining := s.TimeToStart - dt
		if remaining <= 0 {
			m.state = Running{ElapsedTime: 0, Side: m.flip()}
		} else {
			m.state = Preparing{TimeToStart: remaining}
		}
	case Running:
		m.state = Running{ElapsedTime: s.ElapsedTime + dt, Side: s.Side}
	case Init, Result, FalseStart:
	}
}

// HandleKey applies a key press.
//
// Any key during the countdown is a false start, Space included. An arrow
// key during the decision window ends the round; Space there does nothing.
// Space starts a new round from every other state, where arrows do nothing.
func (m *Machine) HandleKey(k Key) {
	switch s := m.State().(type) {
	case Preparing:
		m.state = FalseStart{}
	case Running:
		switch k {
		case KeyLeft:
			m.state = Result{ElapsedTime: s.ElapsedTime, RequestedSide: s.Side, ChosenSide: SideLeft}
		case KeyRight:
			m.state = Result{ElapsedTime: s.ElapsedTime, RequestedSide: s.Side, ChosenSide: SideRight}
		}
	case Init, Result, FalseStart:
		if k == KeySpace {
			m.state = Preparing{TimeToStart: StartDelay}
		}
	}
}
