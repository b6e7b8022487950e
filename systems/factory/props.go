package factory

import (
	"github.com/automoto/adventure/archetypes"
	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/automoto/adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateItem(ecs *ecs.ECS, x, y float64, args leveldata.Args) *donburi.Entry {
	item := archetypes.Item.Spawn(ecs)

	size := cfg.Physics.EntitySize
	attachObject(ecs, item, gamemath.NewAABB(x, y, size, size), tags.ResolvItem)
	components.Item.SetValue(item, components.ItemData{
		Kind:   components.ItemKind(args.String("kind", string(components.ItemHealth))),
		Amount: int(args.Float("amount", float64(cfg.Item.HealAmount))),
	})
	return item
}

func CreateDoor(ecs *ecs.ECS, x, y float64, args leveldata.Args) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)

	attachObject(ecs, door, gamemath.NewAABB(x, y, cfg.Prop.DoorWidth, cfg.Prop.DoorHeight), tags.ResolvDoor)
	components.Door.SetValue(door, components.DoorData{
		Target: args.String("target", ""),
	})
	return door
}

func CreateSign(ecs *ecs.ECS, x, y float64, args leveldata.Args) *donburi.Entry {
	sign := archetypes.Sign.Spawn(ecs)

	size := cfg.Physics.EntitySize
	attachObject(ecs, sign, gamemath.NewAABB(x, y, size, size), tags.ResolvSign)
	components.Sign.SetValue(sign, components.SignData{
		Text: args.String("text", ""),
	})
	return sign
}

// CreateBlock spawns inert geometry; w and h default to one tile.
func CreateBlock(ecs *ecs.ECS, x, y float64, args leveldata.Args) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)

	size := cfg.Physics.EntitySize
	box := gamemath.NewAABB(x, y, args.Float("w", size), args.Float("h", size))
	attachObject(ecs, block, box, tags.ResolvBlock)
	return block
}
