package systems

import (
	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/automoto/adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updatePlayer maps input to intent, fires, moves the player and then
// resolves pickups and sign reading.
func updatePlayer(ecs *ecs.ECS, e *donburi.Entry) {
	step := getStep(ecs)
	level := getLevel(ecs)
	in := step.Input

	obj := components.Object.Get(e)
	ctl := components.Control.Get(e)
	player := components.Player.Get(e)

	ctl.MoveIntent = gamemath.Clamp(in.MoveX, -1, 1)
	if ctl.MoveIntent < 0 {
		obj.Facing = -1
	} else if ctl.MoveIntent > 0 {
		obj.Facing = 1
	}
	ctl.Crouching = in.Crouch
	if in.Jump {
		ctl.WantJump = true
	}

	if in.Shoot && player.Fireball && ctl.FireCooldown <= 0 {
		shot := cfg.Projectile.Fireball
		queueSpawn(ecs, components.SpawnRequest{
			X:        obj.CenterX(),
			Y:        obj.CenterY(),
			SpeedX:   shot.Speed * obj.Facing,
			Damage:   shot.Damage,
			Owner:    components.NewHandle(e),
			Friendly: true,
		})
		ctl.FireCooldown = shot.Cooldown
	}

	stepBody(ecs, e)

	if obj.Y > level.Height {
		obj.RequestRemoval()
		return
	}

	collectItems(e, obj)

	if in.Interact {
		readSigns(ecs, obj)
	}
}

// collectItems applies and removes every item the player overlaps.
func collectItems(e *donburi.Entry, obj *components.ObjectData) {
	for _, item := range overlapping(obj, tags.ResolvItem) {
		itemObj := components.Object.Get(item)
		if !itemObj.RequestRemoval() {
			continue
		}
		applyItem(e, components.Item.Get(item))
	}
}

func applyItem(e *donburi.Entry, item *components.ItemData) {
	player := components.Player.Get(e)
	switch item.Kind {
	case components.ItemHealth:
		Heal(e, item.Amount)
	case components.ItemDoubleJump:
		player.DoubleJump = true
		components.Physics.Get(e).CanDoubleJump = true
	case components.ItemFireball:
		player.Fireball = true
	case components.ItemKey:
		player.Key = true
	case components.ItemSpeed:
		components.Physics.Get(e).MaxSpeed += cfg.Item.SpeedBoost
	}
}

func readSigns(ecs *ecs.ECS, obj *components.ObjectData) {
	step := getStep(ecs)
	for _, sign := range overlapping(obj, tags.ResolvSign) {
		step.SignText = components.Sign.Get(sign).Text
		if entry, ok := components.MessageState.First(ecs.World); ok {
			components.MessageState.Get(entry).Set(step.SignText, cfg.Message.Duration)
		}
	}
}

// overlapping returns the live entities with the given collider tags whose
// boxes intersect obj, using the collision space as broad phase.
func overlapping(obj *components.ObjectData, resolvTags ...string) []*donburi.Entry {
	if obj.Collider == nil {
		return nil
	}
	check := obj.Collider.Check(0, 0, resolvTags...)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(resolvTags...) {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || other == nil || !other.Valid() {
			continue
		}
		otherObj := components.Object.Get(other)
		if otherObj.RemoveRequested || !obj.Intersects(otherObj.AABB) {
			continue
		}
		if containsEntry(out, other) {
			continue
		}
		out = append(out, other)
	}
	return out
}

func containsEntry(list []*donburi.Entry, e *donburi.Entry) bool {
	for _, x := range list {
		if x.Entity() == e.Entity() {
			return true
		}
	}
	return false
}
