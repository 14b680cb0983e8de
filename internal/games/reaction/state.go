package reaction

// State is the current phase of the game together with its payload.
// Exactly one of Init, Preparing, Running, Result or FalseStart is current
// at any time. All variants are comparable values.
type State interface {
	// Phase returns a short lowercase name for logs and status reports.
	Phase() string

	state()
}

// Init is the entry point and the state shown before the first round.
type Init struct{}

// Preparing is the countdown before the decision window opens.
type Preparing struct {
	TimeToStart float64 // seconds left, decreasing
}

// Running is the decision window. Side is the correct answer.
type Running struct {
	ElapsedTime float64 // seconds since the window opened
	Side        Side
}

// Result records the answer the player gave.
type Result struct {
	ElapsedTime   float64 // seconds at the moment of the answer
	RequestedSide Side
	ChosenSide    Side
}

// Correct reports whether the player picked the requested side.
func (r Result) Correct() bool {
	return r.RequestedSide == r.ChosenSide
}

// FalseStart means the player pressed a key during the countdown.
type FalseStart struct{}

func (Init) Phase() string       { return "init" }
func (Preparing) Phase() string  { return "preparing" }
func (Running) Phase() string    { return "running" }
func (Result) Phase() string     { return "result" }
func (FalseStart) Phase() string { return "false_start" }

func (Init) state()       {}
func (Preparing) state()  {}
func (Running) state()    {}
func (Result) state()     {}
func (FalseStart) state() {}
