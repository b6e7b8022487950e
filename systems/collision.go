package systems

import (
	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/yohamta/donburi"
)

// moveAndCollide moves the body along X then Y, resolving each axis against
// the tile grid independently.
func moveAndCollide(level *components.LevelData, e *donburi.Entry, dt float64) {
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)

	resolveHorizontal(level, obj, physics, dt)
	resolveVertical(level, e, obj, physics, dt)

	if physics.OnGround {
		if dir := physics.Support.Conveyor(); dir != 0 {
			obj.X += dir * cfg.Physics.ConveyorSpeed * dt
			clampToWorld(level, obj)
			pushOutHorizontal(level, obj, physics)
		}
	}
}

func clampToWorld(level *components.LevelData, obj *components.ObjectData) {
	obj.X = gamemath.Clamp(obj.X, 0, max(0, level.Width-obj.W))
}

func resolveHorizontal(level *components.LevelData, obj *components.ObjectData, physics *components.PhysicsData, dt float64) {
	obj.X += physics.SpeedX * dt
	clampToWorld(level, obj)
	pushOutHorizontal(level, obj, physics)
}

// pushOutHorizontal moves the body out of every blocking tile along X.
func pushOutHorizontal(level *components.LevelData, obj *components.ObjectData, physics *components.PhysicsData) {
	for _, t := range level.Index.Query(obj.AABB) {
		if !t.Kind.Blocks() || !obj.Intersects(t.AABB) {
			continue
		}
		if dx, _ := obj.MinimumTranslation(t.AABB); dx != 0 {
			obj.X += dx
			physics.SpeedX = 0
		}
	}
}

func resolveVertical(level *components.LevelData, e *donburi.Entry, obj *components.ObjectData, physics *components.PhysicsData, dt float64) {
	prevBottom := obj.Bottom()
	obj.Y += physics.SpeedY * dt

	physics.OnGround = false
	physics.InWater = false
	physics.Support = ""

	for _, t := range uniqueTiles(level.Index.Query(obj.AABB)) {
		switch {
		case t.Kind == leveldata.TileWater:
			if obj.Intersects(t.AABB) {
				physics.InWater = true
			}
		case t.Kind.Blocks():
			if !obj.Intersects(t.AABB) {
				continue
			}
			if _, dy := obj.MinimumTranslation(t.AABB); dy != 0 {
				obj.Y += dy
				if dy < 0 {
					land(physics, t.Kind)
				}
				physics.SpeedY = 0
			}
		case t.Kind == leveldata.TileOneWay:
			if landsOnOneWay(obj.AABB, prevBottom, physics.SpeedY, t.AABB) {
				obj.Y = t.Top() - obj.H
				land(physics, t.Kind)
				physics.SpeedY = 0
			}
		case t.Kind == leveldata.TileHazard:
			if obj.Intersects(t.AABB) {
				Hurt(e, components.DamageEventData{
					Amount:     cfg.Physics.HazardDamage,
					KnockbackY: cfg.Physics.HazardKnockbackY,
				})
			}
		}
	}
}

func land(physics *components.PhysicsData, support leveldata.TileKind) {
	physics.OnGround = true
	physics.CanDoubleJump = true
	physics.Support = support
}

// landsOnOneWay reports whether a body should rest on a one-way tile: it is
// not moving up, it straddles the tile's top edge, it came from above, and
// neither side sits on the tile's seam.
func landsOnOneWay(body gamemath.AABB, prevBottom, speedY float64, tile gamemath.AABB) bool {
	if speedY < 0 {
		return false
	}
	if body.Bottom() <= tile.Top() || body.Top() >= tile.Top() {
		return false
	}
	if prevBottom > tile.Top()+cfg.Physics.OneWayLandTolerance {
		return false
	}
	eps := cfg.Physics.OneWayEdgeEpsilon
	if abs(body.Right()-tile.Left()) <= eps || abs(body.Left()-tile.Right()) <= eps {
		return false
	}
	return body.Intersects(tile)
}

// uniqueTiles drops the repeats a multi-cell grid query returns, keeping
// first-seen order.
func uniqueTiles(tiles []*components.Tile) []*components.Tile {
	out := tiles[:0]
	for _, t := range tiles {
		dup := false
		for _, seen := range out {
			if seen == t {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
