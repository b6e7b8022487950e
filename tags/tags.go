package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Boss       = donburi.NewTag().SetName("Boss")
	Projectile = donburi.NewTag().SetName("Projectile")
	Item       = donburi.NewTag().SetName("Item")
	Door       = donburi.NewTag().SetName("Door")
	Sign       = donburi.NewTag().SetName("Sign")
	Block      = donburi.NewTag().SetName("Block")
)

// Resolv tags for broad-phase queries
const (
	ResolvPlayer     = "player"
	ResolvEnemy      = "enemy"
	ResolvBoss       = "boss"
	ResolvProjectile = "projectile"
	ResolvItem       = "item"
	ResolvDoor       = "door"
	ResolvSign       = "sign"
	ResolvBlock      = "block"
)
