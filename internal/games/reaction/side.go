package reaction

import (
	rand "math/rand/v2"
)

// Side is one of the two choices the player has to identify.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Key is the input vocabulary of the state machine.
// Everything else is filtered out by the driver.
type Key int

const (
	KeySpace Key = iota
	KeyLeft
	KeyRight
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// Coin picks the side a round asks for.
type Coin interface {
	Flip() Side
}

// CoinFunc adapts a plain function to the Coin interface.
type CoinFunc func() Side

// Flip calls f.
func (f CoinFunc) Flip() Side { return f() }

// RandCoin draws sides uniformly from a seeded PCG generator.
type RandCoin struct {
	rng *rand.Rand
}

const goldenRatio64 = 0x9e3779b97f4a7c15

// NewRandCoin returns a coin whose sequence of flips is fixed by seed.
func NewRandCoin(seed int64) *RandCoin {
	u := uint64(seed)
	return &RandCoin{
		rng: rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64))),
	}
}

// Flip returns SideLeft or SideRight with equal probability.
func (c *RandCoin) Flip() Side {
	if c.rng.IntN(2) == 0 {
		return SideLeft
	}
	return SideRight
}

// splitmix spreads nearby seeds across the PCG state space.
func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
