package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the broad-phase space holding every entity collider.
var Space = donburi.NewComponentType[resolv.Space]()
