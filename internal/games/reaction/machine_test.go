package reaction

import (
	"math"
	"testing"
)

// fixedCoin always returns the same side.
func fixedCoin(s Side) Coin {
	return CoinFunc(func() Side { return s })
}

// machineAt returns a machine forced into the given state.
func machineAt(s State, coin Coin) *Machine {
	m := NewMachine(coin)
	m.state = s
	return m
}

func TestNewMachineStartsAtInit(t *testing.T) {
	m := NewMachine(nil)
	if m.State() != (Init{}) {
		t.Errorf("State() = %#v, expected Init", m.State())
	}

	var zero Machine
	if zero.State() != (Init{}) {
		t.Errorf("zero Machine State() = %#v, expected Init", zero.State())
	}
}

func TestAdvanceTimeIgnoredOutsideTimedStates(t *testing.T) {
	states := []State{
		Init{},
		Result{ElapsedTime: 0.4, RequestedSide: SideLeft, ChosenSide: SideRight},
		FalseStart{},
	}
	deltas := []float64{0, 0.016, 1, 1e9}

	for _, s := range states {
		for _, dt := range deltas {
			m := machineAt(s, fixedCoin(SideLeft))
			m.AdvanceTime(dt)
			if m.State() != s {
				t.Errorf("%s.AdvanceTime(%v) = %#v, expected unchanged", s.Phase(), dt, m.State())
			}
		}
	}
}

func TestAdvanceTimePreparing(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		dt       float64
		expected State
	}{
		{"partial", 1.0, 0.25, Preparing{TimeToStart: 0.75}},
		{"zero delta", 0.5, 0, Preparing{TimeToStart: 0.5}},
		{"exactly expires", 0.5, 0.5, Running{ElapsedTime: 0, Side: SideRight}},
		{"overshoot", 0.5, 0.6, Running{ElapsedTime: 0, Side: SideRight}},
		{"huge delta", 1.0, 100, Running{ElapsedTime: 0, Side: SideRight}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := machineAt(Preparing{TimeToStart: tc.start}, fixedCoin(SideRight))
			m.AdvanceTime(tc.dt)
			if m.State() != tc.expected {
				t.Errorf("AdvanceTime(%v) = %#v, expected %#v", tc.dt, m.State(), tc.expected)
			}
		})
	}
}

func TestAdvanceTimeRunningKeepsSide(t *testing.T) {
	for _, side := range []Side{SideLeft, SideRight} {
		m := machineAt(Running{ElapsedTime: 0.5, Side: side}, fixedCoin(side.Opposite()))
		m.AdvanceTime(0.25)
		m.AdvanceTime(0.25)

		expected := Running{ElapsedTime: 1.0, Side: side}
		if m.State() != expected {
			t.Errorf("State() = %#v, expected %#v", m.State(), expected)
		}
	}
}

func TestAdvanceTimeDrawsFreshSideEachRound(t *testing.T) {
	draws := []Side{SideLeft, SideRight}
	i := 0
	coin := CoinFunc(func() Side {
		s := draws[i%len(draws)]
		i++
		return s
	})

	m := NewMachine(coin)
	for round, want := range draws {
		m.HandleKey(KeySpace)
		m.AdvanceTime(StartDelay + 0.01)

		r, ok := m.State().(Running)
		if !ok {
			t.Fatalf("round %d: State() = %#v, expected Running", round, m.State())
		}
		if r.Side != want {
			t.Errorf("round %d: side = %v, expected %v", round, r.Side, want)
		}
		m.HandleKey(KeyLeft)
	}
	if i != len(draws) {
		t.Errorf("coin flipped %d times, expected %d", i, len(draws))
	}
}

func TestAdvanceTimeMalformedDelta(t *testing.T) {
	deltas := []float64{-0.5, math.NaN(), math.Inf(1), math.Inf(-1)}
	states := []State{
		Preparing{TimeToStart: 0.5},
		Running{ElapsedTime: 1.5, Side: SideLeft},
	}

	for _, s := range states {
		for _, dt := range deltas {
			m := machineAt(s, fixedCoin(SideLeft))
			m.AdvanceTime(dt)
			if m.State() != s {
				t.Errorf("%s.AdvanceTime(%v) = %#v, expected unchanged", s.Phase(), dt, m.State())
			}
		}
	}
}

func TestHandleKeyPreparingIsFalseStart(t *testing.T) {
	for _, k := range []Key{KeySpace, KeyLeft, KeyRight} {
		for _, remaining := range []float64{StartDelay, 0.3, 0} {
			m := machineAt(Preparing{TimeToStart: remaining}, fixedCoin(SideLeft))
			m.HandleKey(k)
			if m.State() != (FalseStart{}) {
				t.Errorf("Preparing{%v} + %v = %#v, expected FalseStart", remaining, k, m.State())
			}
		}
	}
}

func TestHandleKeyRunning(t *testing.T) {
	tests := []struct {
		name    string
		side    Side
		key     Key
		want    State
		correct bool
	}{
		{"left on left", SideLeft, KeyLeft, Result{2.0, SideLeft, SideLeft}, true},
		{"right on left", SideLeft, KeyRight, Result{2.0, SideLeft, SideRight}, false},
		{"right on right", SideRight, KeyRight, Result{2.0, SideRight, SideRight}, true},
		{"left on right", SideRight, KeyLeft, Result{2.0, SideRight, SideLeft}, false},
		{"space ignored", SideLeft, KeySpace, Running{2.0, SideLeft}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := machineAt(Running{ElapsedTime: 2.0, Side: tc.side}, fixedCoin(SideLeft))
			m.HandleKey(tc.key)
			if m.State() != tc.want {
				t.Fatalf("State() = %#v, expected %#v", m.State(), tc.want)
			}
			if r, ok := m.State().(Result); ok && r.Correct() != tc.correct {
				t.Errorf("Correct() = %v, expected %v", r.Correct(), tc.correct)
			}
		})
	}
}

func TestHandleKeyIdleStates(t *testing.T) {
	idle := []State{
		Init{},
		Result{ElapsedTime: 0.3, RequestedSide: SideRight, ChosenSide: SideRight},
		FalseStart{},
	}

	for _, s := range idle {
		t.Run(s.Phase(), func(t *testing.T) {
			for _, k := range []Key{KeyLeft, KeyRight} {
				m := machineAt(s, fixedCoin(SideLeft))
				m.HandleKey(k)
				if m.State() != s {
					t.Errorf("%v should be ignored, got %#v", k, m.State())
				}
			}

			m := machineAt(s, fixedCoin(SideLeft))
			m.HandleKey(KeySpace)
			if m.State() != (Preparing{TimeToStart: StartDelay}) {
				t.Errorf("Space = %#v, expected Preparing{%v}", m.State(), StartDelay)
			}
		})
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	states := []State{Init{}, Running{ElapsedTime: 1, Side: SideLeft}, FalseStart{}}
	for _, s := range states {
		m := machineAt(s, fixedCoin(SideLeft))
		m.HandleKey(Key(42))
		if m.State() != s {
			t.Errorf("%s: unknown key changed state to %#v", s.Phase(), m.State())
		}
	}
}

func TestScenarioCountdownToRunning(t *testing.T) {
	m := NewMachine(fixedCoin(SideLeft))

	m.HandleKey(KeySpace)
	if m.State() != (Preparing{TimeToStart: 1.0}) {
		t.Fatalf("after Space: %#v", m.State())
	}

	m.AdvanceTime(0.5)
	if m.State() != (Preparing{TimeToStart: 0.5}) {
		t.Fatalf("after 0.5s: %#v", m.State())
	}

	m.AdvanceTime(0.6)
	if m.State() != (Running{ElapsedTime: 0, Side: SideLeft}) {
		t.Fatalf("after 0.6s: %#v", m.State())
	}
}

func TestScenarioFalseStart(t *testing.T) {
	m := machineAt(Preparing{TimeToStart: 0.3}, fixedCoin(SideLeft))
	m.HandleKey(KeyLeft)
	if m.State() != (FalseStart{}) {
		t.Fatalf("State() = %#v, expected FalseStart", m.State())
	}

	// A false start is not terminal: Space starts over
	m.HandleKey(KeySpace)
	if _, ok := m.State().(Preparing); !ok {
		t.Errorf("State() = %#v, expected Preparing", m.State())
	}
}

func TestScenarioFullRound(t *testing.T) {
	m := NewMachine(fixedCoin(SideRight))

	m.HandleKey(KeySpace)
	for i := 0; i < 70; i++ {
		m.AdvanceTime(1.0 / 60)
	}
	r, ok := m.State().(Running)
	if !ok {
		t.Fatalf("State() = %#v, expected Running", m.State())
	}

	m.HandleKey(KeyRight)
	res, ok := m.State().(Result)
	if !ok {
		t.Fatalf("State() = %#v, expected Result", m.State())
	}
	if !res.Correct() || res.ElapsedTime != r.ElapsedTime {
		t.Errorf("Result = %#v, expected a win at %v", res, r.ElapsedTime)
	}
}
