package systems

import (
	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every projectile in list order. A projectile dies
// on TTL expiry, on the first blocking tile, or after its first hit.
func UpdateProjectiles(ecs *ecs.ECS) {
	level := getLevel(ecs)
	dt := getStep(ecs).DT

	for _, e := range level.Projectiles {
		if !e.Valid() {
			continue
		}
		obj := components.Object.Get(e)
		if obj.RemoveRequested {
			continue
		}
		projectile := components.Projectile.Get(e)
		physics := components.Physics.Get(e)

		projectile.TTL -= dt
		if projectile.TTL <= 0 {
			obj.RequestRemoval()
			continue
		}

		obj.X += physics.SpeedX * dt
		obj.Y += physics.SpeedY * dt
		obj.Sync()

		pad := cfg.Projectile.OffscreenPadding
		if obj.Right() < -pad || obj.X > level.Width+pad || obj.Bottom() < -pad || obj.Y > level.Height+pad {
			obj.RequestRemoval()
			continue
		}

		if hitsTile(level, obj) {
			obj.RequestRemoval()
			continue
		}

		if target := projectileTarget(obj, projectile); target != nil {
			Hurt(target, components.DamageEventData{
				Amount:     projectile.Damage,
				KnockbackX: physics.SpeedX * cfg.Projectile.KnockbackScale,
				KnockbackY: cfg.Projectile.KnockbackUpward,
			})
			obj.RequestRemoval()
		}
	}
}

func hitsTile(level *components.LevelData, obj *components.ObjectData) bool {
	for _, t := range level.Index.Query(obj.AABB) {
		if t.Kind.StopsProjectiles() && obj.Intersects(t.AABB) {
			return true
		}
	}
	return false
}

// projectileTarget returns the first opposing entity the projectile
// overlaps, skipping its owner.
func projectileTarget(obj *components.ObjectData, projectile *components.ProjectileData) *donburi.Entry {
	targets := []string{tags.ResolvPlayer}
	if projectile.Friendly {
		targets = []string{tags.ResolvEnemy, tags.ResolvBoss}
	}
	for _, candidate := range overlapping(obj, targets...) {
		if projectile.Owner.Is(candidate) {
			continue
		}
		return candidate
	}
	return nil
}
