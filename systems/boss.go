package systems

import (
	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateBoss chases the player, fires the fan volley, latches the enraged
// phase, moves, and finally applies contact damage.
func updateBoss(ecs *ecs.ECS, e *donburi.Entry) {
	level := getLevel(ecs)
	boss := components.Boss.Get(e)
	obj := components.Object.Get(e)
	ctl := components.Control.Get(e)

	player, hasPlayer := level.LivePlayer()
	if hasPlayer {
		obj.Facing = towards(obj.X, components.Object.Get(player).X)
		ctl.MoveIntent = obj.Facing
	}

	if boss.FireCooldown <= 0 && hasPlayer {
		fireFan(ecs, e, components.Object.Get(player).X)
		boss.FireCooldown = cfg.Boss.Shot.Cooldown
		if boss.Phase >= 2 {
			boss.FireCooldown = cfg.Boss.EnragedCooldown
		}
	}

	// The enraged phase never reverts, even if healed.
	if boss.Phase < 2 && components.Health.Get(e).Ratio() < cfg.Boss.EnrageRatio {
		boss.Phase = 2
		physics := components.Physics.Get(e)
		physics.MaxSpeed = cfg.Boss.EnragedMaxSpeed
		physics.Accel = cfg.Boss.EnragedAccel
	}

	stepBody(ecs, e)

	if player, ok := level.LivePlayer(); ok {
		playerObj := components.Object.Get(player)
		if obj.Intersects(playerObj.AABB) {
			TakeDamage(player, components.DamageEventData{
				Amount:     cfg.Boss.ContactDamage,
				KnockbackX: cfg.Boss.KnockbackX * towards(obj.CenterX(), playerObj.CenterX()),
				KnockbackY: cfg.Boss.KnockbackY,
			}, getStep(ecs).Elapsed)
		}
	}
}

func fireFan(ecs *ecs.ECS, e *donburi.Entry, targetX float64) {
	obj := components.Object.Get(e)
	dir := towards(obj.X, targetX)
	owner := components.NewHandle(e)
	for _, angle := range cfg.Boss.FanAngles {
		vx, vy := gamemath.FanVelocity(angle, cfg.Boss.Shot.Speed, dir)
		queueSpawn(ecs, components.SpawnRequest{
			X:      obj.CenterX(),
			Y:      obj.CenterY(),
			SpeedX: vx,
			SpeedY: vy,
			Damage: cfg.Boss.Shot.Damage,
			Owner:  owner,
		})
	}
}
