package systems

import (
	"github.com/automoto/adventure/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEntities runs one update per entity in level-list order. Entities
// flagged for removal earlier in the tick are skipped.
func UpdateEntities(ecs *ecs.ECS) {
	level := getLevel(ecs)
	for _, e := range level.Entities {
		if !e.Valid() || components.Object.Get(e).RemoveRequested {
			continue
		}
		switch {
		case e.HasComponent(components.Player):
			updatePlayer(ecs, e)
		case e.HasComponent(components.Enemy):
			updateEnemy(ecs, e)
		case e.HasComponent(components.Boss):
			updateBoss(ecs, e)
		}
	}
}
