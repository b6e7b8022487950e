package factory

import (
	"github.com/automoto/adventure/archetypes"
	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/automoto/adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile centered on the request position.
func CreateProjectile(ecs *ecs.ECS, req components.SpawnRequest) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	size := cfg.Physics.ProjectileSize
	obj := attachObject(ecs, p, gamemath.NewAABB(req.X-size/2, req.Y-size/2, size, size), tags.ResolvProjectile)
	obj.Facing = gamemath.Sign(req.SpeedX)

	// Projectile travels in a straight line
	components.Physics.SetValue(p, components.PhysicsData{
		SpeedX: req.SpeedX,
		SpeedY: req.SpeedY,
	})
	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:    req.Owner,
		Friendly: req.Friendly,
		Damage:   req.Damage,
		TTL:      cfg.Projectile.TTL,
	})

	return p
}
