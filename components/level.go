package components

import (
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/automoto/adventure/shared/spatial"
	"github.com/yohamta/donburi"
)

// Tile is one immutable piece of level geometry.
type Tile struct {
	Kind leveldata.TileKind
	gamemath.AABB
}

// LevelData owns the tiles and the ordered entity and projectile lists.
// Player, Boss and Doors are weak handles into those lists.
type LevelData struct {
	Name   string
	Path   string
	Width  float64
	Height float64

	Tiles []Tile
	Index *spatial.Grid[*Tile]

	Entities    []*donburi.Entry
	Projectiles []*donburi.Entry

	Player Handle
	Boss   Handle
	Doors  []Handle
}

// LivePlayer returns the player if it exists and is not flagged for removal.
func (l *LevelData) LivePlayer() (*donburi.Entry, bool) {
	return liveHandle(l.Player)
}

// LiveBoss returns the boss if it exists and is not flagged for removal.
func (l *LevelData) LiveBoss() (*donburi.Entry, bool) {
	return liveHandle(l.Boss)
}

func liveHandle(h Handle) (*donburi.Entry, bool) {
	e, ok := h.Get()
	if !ok || Object.Get(e).RemoveRequested {
		return nil, false
	}
	return e, true
}

var Level = donburi.NewComponentType[LevelData]()
