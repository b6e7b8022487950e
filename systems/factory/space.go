package factory

import (
	"github.com/automoto/adventure/archetypes"
	"github.com/automoto/adventure/components"
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject creates the entity's box and its collider, registering the
// collider in the space.
func attachObject(ecs *ecs.ECS, e *donburi.Entry, box gamemath.AABB, tag string) *components.ObjectData {
	obj := resolv.NewObject(box.X, box.Y, box.W, box.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	obj.Data = e

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Object.SetValue(e, components.ObjectData{
		AABB:     box,
		Collider: obj,
		Facing:   1,
	})
	return components.Object.Get(e)
}
