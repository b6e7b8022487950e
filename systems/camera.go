package systems

import (
	"github.com/automoto/adventure/components"
	"github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/automoto/adventure/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the view towards the player and keeps it inside the
// level. The first call after a level loads snaps straight to the target.
func UpdateCamera(e *ecs.ECS, screenWidth, screenHeight float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	snap := !ok
	if !ok {
		cameraEntry = factory.CreateCamera(e)
	}
	camera := components.Camera.Get(cameraEntry)

	level := getLevel(e)
	player, ok := level.Player.Get()
	if !ok {
		return // no player (could be dead), skip camera update
	}
	obj := components.Object.Get(player)

	targetX := obj.CenterX() - screenWidth/2
	targetY := obj.CenterY() - screenHeight/2

	// Levels smaller than the screen pin to the origin.
	targetX = gamemath.Clamp(targetX, 0, max(0, level.Width-screenWidth))
	targetY = gamemath.Clamp(targetY, 0, max(0, level.Height-screenHeight))

	if snap {
		camera.Position.X, camera.Position.Y = targetX, targetY
		return
	}
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowFactor
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowFactor
}

func cameraOffset(e *ecs.ECS) (float64, float64) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(entry)
	return camera.Position.X, camera.Position.Y
}
