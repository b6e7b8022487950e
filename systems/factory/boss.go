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

func CreateBoss(ecs *ecs.ECS, x, y float64, args leveldata.Args) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)

	size := cfg.Boss.Size
	attachObject(ecs, boss, gamemath.NewAABB(x, y, size, size), tags.ResolvBoss)

	components.Boss.SetValue(boss, components.BossData{Phase: 1})
	components.Physics.SetValue(boss, newBody(
		args.Float("speed", cfg.Boss.MaxSpeed),
		cfg.Boss.Acceleration,
	))
	health := healthArg(args, cfg.Boss.Health)
	components.Health.SetValue(boss, components.HealthData{
		Current:        health,
		Max:            health,
		DamageCooldown: cfg.Boss.DamageCooldownSec,
		LastDamageAt:   -cfg.Boss.DamageCooldownSec,
	})

	return boss
}
