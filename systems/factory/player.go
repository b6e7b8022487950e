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

// CreatePlayer spawns the player. Args may override health and speed.
func CreatePlayer(ecs *ecs.ECS, x, y float64, args leveldata.Args) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Physics.EntitySize
	attachObject(ecs, player, gamemath.NewAABB(x, y, size, size), tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Fireball: cfg.Player.FireballDefault,
	})
	components.Physics.SetValue(player, newBody(
		args.Float("speed", cfg.Player.MaxSpeed),
		cfg.Player.Acceleration,
	))
	health := healthArg(args, cfg.Player.Health)
	components.Health.SetValue(player, components.HealthData{
		Current:        health,
		Max:            health,
		IFrameDuration: cfg.Player.InvulnSeconds,
		DamageCooldown: cfg.Player.DamageCooldown,
		LastDamageAt:   -cfg.Player.DamageCooldown,
	})

	return player
}

// healthArg reads the health arg. Level files cannot spawn a creature that
// is already dead, so values below 1 become 1.
func healthArg(args leveldata.Args, def int) int {
	return max(1, int(args.Float("health", float64(def))))
}

func newBody(maxSpeed, accel float64) components.PhysicsData {
	return components.PhysicsData{
		Accel:           accel,
		MaxSpeed:        maxSpeed,
		JumpPower:       cfg.Physics.JumpPower,
		DoubleJumpPower: cfg.Physics.DoubleJumpPower,
	}
}
