package components

import "github.com/yohamta/donburi"

// PlayerData holds the unlockable abilities of the player.
type PlayerData struct {
	Fireball   bool
	DoubleJump bool
	Key        bool
}

var Player = donburi.NewComponentType[PlayerData]()
