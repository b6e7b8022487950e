package factory

import (
	"github.com/automoto/adventure/archetypes"
	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/automoto/adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy. index is its position in the level list and
// seeds the wanderer phase.
func CreateEnemy(ecs *ecs.ECS, x, y float64, index int, args leveldata.Args) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	attachObject(ecs, enemy, gamemath.NewAABB(x, y, cfg.Enemy.Width, cfg.Enemy.Height), tags.ResolvEnemy)

	variant := components.EnemyVariant(args.String("variant", string(components.VariantPatroller)))
	switch variant {
	case components.VariantPatroller, components.VariantJumper, components.VariantWanderer:
	default:
		variant = components.VariantPatroller
	}

	r := rng(ecs)
	phases := cfg.Enemy.WanderPhases
	if phases <= 0 {
		phases = 1
	}
	components.Enemy.SetValue(enemy, components.EnemyData{
		Variant:     variant,
		JumpTimer:   cfg.Enemy.FirstJumpMin + r.Float64()*(cfg.Enemy.FirstJumpMax-cfg.Enemy.FirstJumpMin),
		PhaseOffset: float64(index % phases),
	})
	components.Physics.SetValue(enemy, newBody(
		args.Float("speed", cfg.Enemy.MaxSpeed),
		cfg.Enemy.Acceleration,
	))
	health := healthArg(args, cfg.Enemy.Health)
	components.Health.SetValue(enemy, components.HealthData{
		Current:        health,
		Max:            health,
		DamageCooldown: cfg.Enemy.DamageCooldown,
		LastDamageAt:   -cfg.Enemy.DamageCooldown,
	})

	return enemy
}
