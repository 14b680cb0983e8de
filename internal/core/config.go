package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second delivered by the driver
	Seed     int64 // RNG seed for reproducible side draws
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a coarse status report a game hands back to the platform.
// The platform uses it for logging and never for game decisions.
type GameState struct {
	Phase   string  // Name of the current phase, e.g. "running"
	Status  string  // Status line as shown to the player
	Elapsed float64 // Seconds measured in the current or last round
	Won     bool    // Set when the last round ended with a correct answer
}

// StepResult is returned after a game consumes a time delta or an action.
type StepResult struct {
	State   GameState
	Changed bool // Phase differs from the one before the step
}
