// Package core wires the simulation systems into a steppable world and
// drives level transitions and the win/lose flow around it.
package core

import (
	"github.com/automoto/adventure/components"
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/automoto/adventure/systems"
	"github.com/automoto/adventure/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StepResult is what one tick exposes to the outside.
type StepResult struct {
	Tick       uint64
	Spawned    int
	Removed    int
	Transition string // Door target, empty when none
	SignText   string
	Outcome    components.Outcome
}

// World is one loaded level and its simulation. It is not safe for
// concurrent use.
type World struct {
	ecs *ecs.ECS
}

// NewWorld builds the simulation for a parsed level. seed drives every
// random decision.
func NewWorld(data *leveldata.Level, seed int64) *World {
	e := ecs.NewECS(donburi.NewWorld())

	// Order matters: each system sees the results of the previous one.
	e.AddSystem(systems.UpdateTimers)
	e.AddSystem(systems.UpdateSpatialIndex)
	e.AddSystem(systems.UpdateEntities)
	e.AddSystem(systems.UpdateProjectiles)
	e.AddSystem(systems.UpdateDoors)
	e.AddSystem(systems.UpdateRemovals)
	e.AddSystem(systems.UpdateOutcome)
	e.AddSystem(systems.FlushSpawns)

	factory.CreateStep(e, seed)
	factory.CreateLevel(e, data)

	return &World{ecs: e}
}

// Step advances the world by dt seconds with the given input.
func (w *World) Step(in components.InputSnapshot, dt float64) StepResult {
	step := w.stepData()
	step.DT = dt
	step.Input = in

	w.ecs.Update()

	return StepResult{
		Tick:       step.Tick,
		Spawned:    step.Spawned,
		Removed:    step.Removed,
		Transition: step.Transition,
		SignText:   step.SignText,
		Outcome:    step.Outcome,
	}
}

// ECS exposes the underlying ECS for presentation layers.
func (w *World) ECS() *ecs.ECS { return w.ecs }

// Level returns the live level state.
func (w *World) Level() *components.LevelData {
	return components.Level.Get(components.Level.MustFirst(w.ecs.World))
}

// Player returns the player entity while it is alive.
func (w *World) Player() (*donburi.Entry, bool) {
	return w.Level().Player.Get()
}

// Boss returns the boss entity while it is alive.
func (w *World) Boss() (*donburi.Entry, bool) {
	return w.Level().Boss.Get()
}

// Message returns the HUD message state.
func (w *World) Message() *components.MessageStateData {
	return components.MessageState.Get(components.MessageState.MustFirst(w.ecs.World))
}

// Elapsed returns simulated seconds since the world was built.
func (w *World) Elapsed() float64 {
	return w.stepData().Elapsed
}

func (w *World) stepData() *components.StepData {
	return components.Step.Get(components.Step.MustFirst(w.ecs.World))
}
