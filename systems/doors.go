package systems

import (
	"github.com/automoto/adventure/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDoors refreshes each door's overlap flag against the player's final
// position and requests a transition when interact is held on a door.
func UpdateDoors(ecs *ecs.ECS) {
	level := getLevel(ecs)
	step := getStep(ecs)
	player, hasPlayer := level.LivePlayer()

	for _, h := range level.Doors {
		door, ok := h.Get()
		if !ok {
			continue
		}
		data := components.Door.Get(door)
		data.PlayerOverlapping = hasPlayer &&
			components.Object.Get(door).Intersects(components.Object.Get(player).AABB)

		if data.PlayerOverlapping && step.Input.Interact && step.Transition == "" && data.Target != "" {
			step.Transition = data.Target
		}
	}
}
