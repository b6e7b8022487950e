package components

import (
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/yohamta/donburi"
)

// PhysicsData is the kinematic body of a creature or projectile.
// OnGround and InWater are recomputed by every collision pass.
type PhysicsData struct {
	SpeedX          float64
	SpeedY          float64
	Accel           float64
	MaxSpeed        float64
	JumpPower       float64
	DoubleJumpPower float64
	CanDoubleJump   bool
	OnGround        bool
	InWater         bool
	Support         leveldata.TileKind // Tile that last pushed the body up
}

var Physics = donburi.NewComponentType[PhysicsData]()

// ControlData is the per-tick intent of a creature.
type ControlData struct {
	MoveIntent   float64 // [-1, 1]
	WantJump     bool
	Crouching    bool
	FireCooldown float64
}

var Control = donburi.NewComponentType[ControlData]()
