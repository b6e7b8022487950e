package systems

import "github.com/yohamta/donburi/ecs"

// UpdateOutcome latches the win and loss conditions once their entity has
// been removed from the world.
func UpdateOutcome(ecs *ecs.ECS) {
	level := getLevel(ecs)
	step := getStep(ecs)

	if !level.Boss.IsZero() {
		if _, alive := level.Boss.Get(); !alive {
			step.Outcome.Won = true
		}
	}
	if _, alive := level.Player.Get(); !alive {
		step.Outcome.Lost = true
	}
}
