package components

import "github.com/yohamta/donburi"

// ItemKind names the effect of a pickup.
type ItemKind string

const (
	ItemHealth     ItemKind = "health"
	ItemDoubleJump ItemKind = "double_jump"
	ItemFireball   ItemKind = "fireball"
	ItemKey        ItemKind = "key"
	ItemSpeed      ItemKind = "speed"
)

type ItemData struct {
	Kind   ItemKind
	Amount int
}

var Item = donburi.NewComponentType[ItemData]()

type DoorData struct {
	Target            string
	PlayerOverlapping bool
}

var Door = donburi.NewComponentType[DoorData]()

type SignData struct {
	Text string
}

var Sign = donburi.NewComponentType[SignData]()
