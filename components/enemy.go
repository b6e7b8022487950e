package components

import "github.com/yohamta/donburi"

// EnemyVariant selects the movement behaviour of an enemy.
type EnemyVariant string

const (
	VariantPatroller EnemyVariant = "patroller"
	VariantJumper    EnemyVariant = "jumper"
	VariantWanderer  EnemyVariant = "wanderer"
)

type EnemyData struct {
	Variant     EnemyVariant
	JumpTimer   float64 // Jumper: seconds until the next jump
	PhaseOffset float64 // Wanderer: keeps instances out of sync
}

var Enemy = donburi.NewComponentType[EnemyData]()

type BossData struct {
	Phase        int // 1, then latched to 2
	FireCooldown float64
	PatternTime  float64
}

var Boss = donburi.NewComponentType[BossData]()
