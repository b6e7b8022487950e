// Package leveldata turns level files into plain level descriptions shared by
// the simulation and the tools. It has no dependencies on ebitengine, donburi
// or resolv; pure data only.
package leveldata

import "errors"

var (
	// ErrMissingField is returned when a numeric field the simulation depends
	// on is absent from the level source.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidTile is returned for tiles with a negative size.
	ErrInvalidTile = errors.New("invalid tile geometry")
	// ErrUnsupportedFormat is returned for unknown level file extensions.
	ErrUnsupportedFormat = errors.New("unsupported level format")
)

// TileKind classifies how a tile interacts with bodies.
type TileKind string

const (
	TileSolid          TileKind = "solid"
	TileOneWay         TileKind = "oneway"
	TileWater          TileKind = "water"
	TileHazard         TileKind = "hazard"
	TileIce            TileKind = "ice"
	TileConveyorLeft   TileKind = "conveyor_left"
	TileConveyorRight  TileKind = "conveyor_right"
	TileCollideImage   TileKind = "collide_image"
	TileNoCollideImage TileKind = "no_collide_image"
)

var knownTiles = map[TileKind]bool{
	TileSolid:          true,
	TileOneWay:         true,
	TileWater:          true,
	TileHazard:         true,
	TileIce:            true,
	TileConveyorLeft:   true,
	TileConveyorRight:  true,
	TileCollideImage:   true,
	TileNoCollideImage: true,
}

// Known reports whether the kind is one the simulation understands.
func (k TileKind) Known() bool { return knownTiles[k] }

// Blocks reports whether the kind stops bodies on the horizontal axis.
func (k TileKind) Blocks() bool {
	switch k {
	case TileSolid, TileIce, TileCollideImage, TileConveyorLeft, TileConveyorRight:
		return true
	}
	return false
}

// Conveyor returns the belt direction, or 0 for other kinds.
func (k TileKind) Conveyor() float64 {
	switch k {
	case TileConveyorLeft:
		return -1
	case TileConveyorRight:
		return 1
	}
	return 0
}

// Ground reports whether an enemy may walk onto the kind.
func (k TileKind) Ground() bool {
	switch k {
	case TileSolid, TileWater, TileIce, TileCollideImage:
		return true
	}
	return false
}

// StopsProjectiles reports whether a projectile is destroyed by the kind.
func (k TileKind) StopsProjectiles() bool {
	return k.Blocks() || k == TileOneWay
}

// EntityKind names the behaviour of a level entity.
type EntityKind string

const (
	EntityPlayer EntityKind = "player"
	EntityEnemy  EntityKind = "enemy"
	EntityBoss   EntityKind = "boss"
	EntityItem   EntityKind = "item"
	EntityDoor   EntityKind = "door"
	EntitySign   EntityKind = "sign"
	EntityBlock  EntityKind = "block"
)

// Known reports whether the kind is one the simulation understands.
func (k EntityKind) Known() bool {
	switch k {
	case EntityPlayer, EntityEnemy, EntityBoss, EntityItem, EntityDoor, EntitySign, EntityBlock:
		return true
	}
	return false
}

// Level is a parsed level. Tiles and entities only carry known kinds.
type Level struct {
	Name     string
	Path     string
	Width    float64
	Height   float64
	Tiles    []Tile
	Entities []Entity
}

// Tile is one static rectangle of level geometry.
type Tile struct {
	Kind       TileKind
	X, Y, W, H float64
}

// Entity is a spawn description.
type Entity struct {
	Kind EntityKind
	X, Y float64
	Args Args
}

// Args holds per-entity options such as health or an enemy variant.
type Args map[string]any

// String returns the string arg or def when absent or not a string.
func (a Args) String(key, def string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return def
}

// Float returns the numeric arg or def when absent or not a number.
func (a Args) Float(key string, def float64) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// Has reports whether the arg is set.
func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}
