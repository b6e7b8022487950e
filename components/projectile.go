package components

import "github.com/yohamta/donburi"

// ProjectileData is a straight-line shot. Owner is a weak handle used only
// to skip self-hits; Friendly is fixed at spawn and picks the target side.
type ProjectileData struct {
	Owner    Handle
	Friendly bool
	Damage   int
	TTL      float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
