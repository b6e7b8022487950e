package systems

import (
	"github.com/automoto/adventure/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers advances the clock, clears last tick's effects and decays
// every cooldown.
func UpdateTimers(ecs *ecs.ECS) {
	step := getStep(ecs)
	dt := step.DT

	step.Tick++
	step.Elapsed += dt
	step.Spawns = step.Spawns[:0]
	step.Transition = ""
	step.SignText = ""
	step.Removed = 0
	step.Spawned = 0

	components.Control.Each(ecs.World, func(e *donburi.Entry) {
		ctl := components.Control.Get(e)
		ctl.FireCooldown = max(0, ctl.FireCooldown-dt)
	})

	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		health.IFrames = max(0, health.IFrames-dt)
	})

	components.Boss.Each(ecs.World, func(e *donburi.Entry) {
		boss := components.Boss.Get(e)
		boss.PatternTime += dt
		boss.FireCooldown = max(0, boss.FireCooldown-dt)
	})

	if entry, ok := components.MessageState.First(ecs.World); ok {
		msg := components.MessageState.Get(entry)
		msg.Timer = max(0, msg.Timer-dt)
	}
}
