package factory

import (
	"math/rand"

	"github.com/automoto/adventure/archetypes"
	"github.com/automoto/adventure/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStep creates the clock singleton. The seed drives every random
// decision in the world.
func CreateStep(ecs *ecs.ECS, seed int64) *donburi.Entry {
	step := archetypes.Step.Spawn(ecs)
	components.Step.SetValue(step, components.StepData{
		Rand: rand.New(rand.NewSource(seed)),
	})
	return step
}

func rng(ecs *ecs.ECS) *rand.Rand {
	return components.Step.Get(components.Step.MustFirst(ecs.World)).Rand
}
