package components

import (
	cfg "github.com/automoto/adventure/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Pressed reports whether the action is held this frame.
func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// Snapshot converts the frame state into a simulation input.
func (in *InputData) Snapshot() InputSnapshot {
	var move float64
	if in.Pressed(cfg.ActionMoveLeft) {
		move -= 1
	}
	if in.Pressed(cfg.ActionMoveRight) {
		move += 1
	}
	return InputSnapshot{
		MoveX:    move,
		Crouch:   in.Pressed(cfg.ActionCrouch),
		Jump:     in.JustPressed(cfg.ActionJump),
		Shoot:    in.JustPressed(cfg.ActionShoot),
		Interact: in.Pressed(cfg.ActionInteract),
	}
}

var Input = donburi.NewComponentType[InputData]()

// InputSnapshot is what the simulation reads each tick. Jump and Shoot are
// edges; the rest are held states.
type InputSnapshot struct {
	MoveX    float64 // -1, 0 or 1
	Crouch   bool
	Jump     bool
	Shoot    bool
	Interact bool
}
