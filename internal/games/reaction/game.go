package reaction

import (
	"time"

	"github.com/vovakirdan/leftright/internal/core"
	"github.com/vovakirdan/leftright/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "reaction"

// Game adapts a Machine to the platform's registry.Game interface.
type Game struct {
	machine *Machine
}

// New creates a new game instance in the Init state.
func New() *Game {
	return &Game{machine: NewMachine(nil)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Left/Right"
}

// Reset starts over from Init with side draws seeded from cfg.Seed.
// Screen size doesn't matter here; the layout follows the screen on every frame.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.machine = NewMachine(NewRandCoin(cfg.Seed))
}

// Machine exposes the underlying state machine.
func (g *Game) Machine() *Machine {
	return g.machine
}

// Advance feeds dt to the state machine.
func (g *Game) Advance(dt time.Duration) core.StepResult {
	before := g.machine.State().Phase()
	g.machine.AdvanceTime(dt.Seconds())
	return g.result(before)
}

// Input maps a platform action to a key. Actions other than start, left and
// right are ignored.
func (g *Game) Input(a core.Action) core.StepResult {
	before := g.machine.State().Phase()
	if a.IsGameAction() {
		g.machine.HandleKey(keyFor(a))
	}
	return g.result(before)
}

func (g *Game) result(before string) core.StepResult {
	st := g.State()
	return core.StepResult{State: st, Changed: st.Phase != before}
}

func keyFor(a core.Action) Key {
	switch a {
	case core.ActionLeft:
		return KeyLeft
	case core.ActionRight:
		return KeyRight
	default:
		return KeySpace
	}
}

// Render draws the current view.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, Project(g.machine.State()))
}

// State returns the platform status for the current state.
func (g *Game) State() core.GameState {
	s := g.machine.State()
	st := core.GameState{
		Phase:  s.Phase(),
		Status: Project(s).Text,
	}
	switch s := s.(type) {
	case Running:
		st.Elapsed = s.ElapsedTime
	case Result:
		st.Elapsed = s.ElapsedTime
		st.Won = s.Correct()
	}
	return st
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
