package components

import (
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the common state of every level entity: its box, the
// broad-phase collider mirroring it and the removal tombstone.
type ObjectData struct {
	gamemath.AABB
	Collider        *resolv.Object
	Facing          float64
	RemoveRequested bool
}

// Sync copies the box position into the collider and refreshes its cells.
func (o *ObjectData) Sync() {
	if o.Collider == nil {
		return
	}
	o.Collider.X = o.X
	o.Collider.Y = o.Y
	o.Collider.Update()
}

// RequestRemoval sets the tombstone. It reports false if it was already set.
func (o *ObjectData) RequestRemoval() bool {
	if o.RemoveRequested {
		return false
	}
	o.RemoveRequested = true
	return true
}

var Object = donburi.NewComponentType[ObjectData]()
