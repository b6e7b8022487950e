package systems

import (
	"github.com/automoto/adventure/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRemovals compacts the entity and projectile lists, deleting every
// entity whose removal was requested during the tick.
func UpdateRemovals(ecs *ecs.ECS) {
	level := getLevel(ecs)
	step := getStep(ecs)

	var space *resolv.Space
	if entry, ok := components.Space.First(ecs.World); ok {
		space = components.Space.Get(entry)
	}

	var toRemove []*donburi.Entry
	level.Entities, toRemove = compact(level.Entities, toRemove)
	level.Projectiles, toRemove = compact(level.Projectiles, toRemove)

	for _, e := range toRemove {
		obj := components.Object.Get(e)
		if space != nil && obj.Collider != nil {
			space.Remove(obj.Collider)
		}
		ecs.World.Remove(e.Entity())
	}
	step.Removed = len(toRemove)
}

func compact(list, removed []*donburi.Entry) ([]*donburi.Entry, []*donburi.Entry) {
	kept := list[:0]
	for _, e := range list {
		if !e.Valid() {
			continue
		}
		if components.Object.Get(e).RemoveRequested {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	return kept, removed
}
