package systems

import (
	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// stepBody runs the full creature physics step: forces, then the
// axis-separated move against the tile grid.
func stepBody(ecs *ecs.ECS, e *donburi.Entry) {
	dt := getStep(ecs).DT
	physics := components.Physics.Get(e)
	applyForces(physics, components.Control.Get(e), dt)
	moveAndCollide(getLevel(ecs), e, dt)
	components.Object.Get(e).Sync()
}

// applyForces applies drag, horizontal acceleration, gravity or buoyancy and
// resolves a pending jump. The jump request is always consumed.
func applyForces(physics *components.PhysicsData, ctl *components.ControlData, dt float64) {
	physics.SpeedX = gamemath.ApplyDrag(physics.SpeedX, dragFor(physics), dt)

	physics.SpeedX += ctl.MoveIntent * physics.Accel * dt
	physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)

	if physics.InWater {
		physics.SpeedY += cfg.Physics.WaterBuoyancy * dt
	} else {
		physics.SpeedY += cfg.Physics.Gravity * dt
	}
	physics.SpeedY = gamemath.Clamp(physics.SpeedY, cfg.Physics.MaxRiseSpeed, cfg.Physics.MaxFallSpeed)

	if ctl.WantJump {
		if physics.OnGround || physics.InWater {
			physics.SpeedY = physics.JumpPower
			physics.OnGround = false
		} else if physics.CanDoubleJump {
			physics.SpeedY = physics.DoubleJumpPower
			physics.CanDoubleJump = false
		}
		ctl.WantJump = false
	}
}

func dragFor(physics *components.PhysicsData) float64 {
	switch {
	case physics.InWater:
		return cfg.Physics.WaterDrag
	case physics.OnGround && physics.Support == leveldata.TileIce:
		return cfg.Physics.IceDrag
	case physics.OnGround:
		return cfg.Physics.GroundDrag
	}
	return cfg.Physics.AirDrag
}
