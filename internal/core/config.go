package core

import (
	"math/rand"
	"time"
)

// Board and rendering constants. They are fixed for the process lifetime.
const (
	BoardWidth  = 20
	BoardHeight = 15
	CellSize    = 20
)

// RuntimeConfig contains configuration passed to the engine at initialization.
type RuntimeConfig struct {
	Board    Size  // Board size in cells
	CellSize int   // Canvas units per cell
	Seed     int64 // RNG seed for food placement (0 = time based)
}

// DefaultConfig returns the fixed 20x15 board with 20-unit cells.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Board:    Size{W: BoardWidth, H: BoardHeight},
		CellSize: CellSize,
		Seed:     0,
	}
}

// Rand is the random source used for food placement.
// *rand.Rand satisfies it; tests supply deterministic fakes.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
