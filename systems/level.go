package systems

import (
	"github.com/automoto/adventure/components"
	"github.com/yohamta/donburi/ecs"
)

func getLevel(ecs *ecs.ECS) *components.LevelData {
	return components.Level.Get(components.Level.MustFirst(ecs.World))
}

func getStep(ecs *ecs.ECS) *components.StepData {
	return components.Step.Get(components.Step.MustFirst(ecs.World))
}

// UpdateSpatialIndex rebuilds the tile grid from the level's tiles.
func UpdateSpatialIndex(ecs *ecs.ECS) {
	level := getLevel(ecs)
	level.Index.Clear()
	for i := range level.Tiles {
		level.Index.Insert(level.Tiles[i].AABB, &level.Tiles[i])
	}
}
