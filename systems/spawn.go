package systems

import (
	"github.com/automoto/adventure/components"
	"github.com/automoto/adventure/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func queueSpawn(ecs *ecs.ECS, req components.SpawnRequest) {
	step := getStep(ecs)
	step.Spawns = append(step.Spawns, req)
}

// FlushSpawns creates the projectiles requested during the tick. They join
// the projectile list and first move on the next tick.
func FlushSpawns(ecs *ecs.ECS) {
	step := getStep(ecs)
	level := getLevel(ecs)
	for _, req := range step.Spawns {
		level.Projectiles = append(level.Projectiles, factory.CreateProjectile(ecs, req))
	}
	step.Spawned = len(step.Spawns)
	step.Spawns = step.Spawns[:0]
}
