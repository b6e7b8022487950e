package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// SpawnRequest is a projectile queued during a tick and created after it.
type SpawnRequest struct {
	X, Y     float64 // Center
	SpeedX   float64
	SpeedY   float64
	Damage   int
	Owner    Handle
	Friendly bool
}

// Outcome records how the encounter ended. Both flags latch.
type Outcome struct {
	Won  bool
	Lost bool
}

// StepData is the per-world clock and the effects of the current tick.
type StepData struct {
	DT      float64
	Elapsed float64
	Tick    uint64
	Input   InputSnapshot
	Rand    *rand.Rand

	Spawns     []SpawnRequest
	Transition string // Door target requested this tick
	SignText   string // Sign read this tick
	Removed    int
	Spawned    int
	Outcome    Outcome
}

var Step = donburi.NewComponentType[StepData]()
