package systems

import (
	"math"

	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateEnemy runs contact damage, then the AI, then physics.
func updateEnemy(ecs *ecs.ECS, e *donburi.Entry) {
	obj := components.Object.Get(e)
	level := getLevel(ecs)

	if player, ok := level.LivePlayer(); ok {
		playerObj := components.Object.Get(player)
		if obj.Intersects(playerObj.AABB) {
			knockbackX := cfg.Enemy.KnockbackX
			if playerObj.X <= obj.X {
				knockbackX = -knockbackX
			}
			TakeDamage(player, components.DamageEventData{
				Amount:     cfg.Enemy.ContactDamage,
				KnockbackX: knockbackX,
				KnockbackY: cfg.Enemy.KnockbackY,
			}, getStep(ecs).Elapsed)
		}
	}

	updateEnemyAI(ecs, e)
	stepBody(ecs, e)
}

func updateEnemyAI(ecs *ecs.ECS, e *donburi.Entry) {
	step := getStep(ecs)
	level := getLevel(ecs)
	enemy := components.Enemy.Get(e)
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	ctl := components.Control.Get(e)

	player, hasPlayer := level.LivePlayer()

	ctl.MoveIntent = 0
	switch enemy.Variant {
	case components.VariantPatroller:
		// Walls zero vx, so stalling means we bumped into something.
		if math.Abs(physics.SpeedX) < cfg.Enemy.PatrolStallSpeed {
			obj.Facing = -obj.Facing
		}
		ctl.MoveIntent = obj.Facing
	case components.VariantJumper:
		enemy.JumpTimer -= step.DT
		if enemy.JumpTimer <= 0 {
			ctl.WantJump = true
			enemy.JumpTimer = randRange(step, cfg.Enemy.JumpIntervalMin, cfg.Enemy.JumpIntervalMax)
		}
		if hasPlayer {
			obj.Facing = towards(obj.X, components.Object.Get(player).X)
			ctl.MoveIntent = cfg.Enemy.JumperDrift * obj.Facing
		}
	case components.VariantWanderer:
		ctl.MoveIntent = math.Sin(step.Elapsed + enemy.PhaseOffset)
		obj.Facing = 1
		if ctl.MoveIntent < 0 {
			obj.Facing = -1
		}
	}

	if !groundAhead(level, obj.AABB, obj.Facing) {
		obj.Facing = -obj.Facing
		ctl.MoveIntent = obj.Facing
	}

	if !hasPlayer || step.Rand.Float64() >= cfg.Enemy.ShootChance {
		return
	}
	playerObj := components.Object.Get(player)
	if math.Abs(playerObj.X-obj.X) < cfg.Enemy.DetectX && math.Abs(playerObj.Y-obj.Y) < cfg.Enemy.DetectY {
		queueSpawn(ecs, components.SpawnRequest{
			X:      obj.CenterX(),
			Y:      obj.CenterY(),
			SpeedX: cfg.Enemy.Shot.Speed * towards(obj.X, playerObj.X),
			Damage: cfg.Enemy.Shot.Damage,
			Owner:  components.NewHandle(e),
		})
	}
}

// groundAhead probes a small box just past the leading foot for walkable
// tiles.
func groundAhead(level *components.LevelData, body gamemath.AABB, facing float64) bool {
	w := cfg.Enemy.LedgeProbeWidth
	x := body.Right()
	if facing < 0 {
		x = body.Left() - w
	}
	probe := gamemath.AABB{X: x, Y: body.Bottom() + cfg.Enemy.LedgeProbeGap, W: w, H: cfg.Enemy.LedgeProbeHeight}

	for _, t := range level.Index.Query(probe) {
		if t.Kind.Ground() && probe.Intersects(t.AABB) {
			return true
		}
	}
	return false
}

// towards returns 1 if to lies right of from, else -1.
func towards(from, to float64) float64 {
	if to > from {
		return 1
	}
	return -1
}

func randRange(step *components.StepData, lo, hi float64) float64 {
	return lo + step.Rand.Float64()*(hi-lo)
}
