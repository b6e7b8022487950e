package factory

import (
	"math"

	"github.com/automoto/adventure/archetypes"
	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/automoto/adventure/shared/spatial"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the level singleton, the collision space and every
// entity described by data, in file order. A level without a player gets
// one at the fallback spawn.
func CreateLevel(ecs *ecs.ECS, data *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	cell := int(cfg.Physics.CellSize)
	CreateSpace(ecs, int(math.Ceil(data.Width)), int(math.Ceil(data.Height)), cell, cell)

	levelData := &components.LevelData{
		Name:   data.Name,
		Path:   data.Path,
		Width:  data.Width,
		Height: data.Height,
		Index:  spatial.NewGrid[*components.Tile](cfg.Physics.CellSize),
	}
	for _, t := range data.Tiles {
		if !t.Kind.Known() {
			continue
		}
		levelData.Tiles = append(levelData.Tiles, components.Tile{
			Kind: t.Kind,
			AABB: gamemath.NewAABB(t.X, t.Y, t.W, t.H),
		})
	}
	for i, ent := range data.Entities {
		var e *donburi.Entry
		switch ent.Kind {
		case leveldata.EntityPlayer:
			if !levelData.Player.IsZero() {
				log.Warn("ignoring extra player", "level", data.Name, "index", i)
				continue
			}
			e = CreatePlayer(ecs, ent.X, ent.Y, ent.Args)
			levelData.Player = components.NewHandle(e)
		case leveldata.EntityEnemy:
			e = CreateEnemy(ecs, ent.X, ent.Y, i, ent.Args)
		case leveldata.EntityBoss:
			if !levelData.Boss.IsZero() {
				log.Warn("ignoring extra boss", "level", data.Name, "index", i)
				continue
			}
			e = CreateBoss(ecs, ent.X, ent.Y, ent.Args)
			levelData.Boss = components.NewHandle(e)
		case leveldata.EntityItem:
			e = CreateItem(ecs, ent.X, ent.Y, ent.Args)
		case leveldata.EntityDoor:
			e = CreateDoor(ecs, ent.X, ent.Y, ent.Args)
			levelData.Doors = append(levelData.Doors, components.NewHandle(e))
		case leveldata.EntitySign:
			e = CreateSign(ecs, ent.X, ent.Y, ent.Args)
		case leveldata.EntityBlock:
			e = CreateBlock(ecs, ent.X, ent.Y, ent.Args)
		default:
			continue
		}
		levelData.Entities = append(levelData.Entities, e)
	}

	if levelData.Player.IsZero() {
		p := CreatePlayer(ecs, cfg.Player.FallbackX, cfg.Player.FallbackY, leveldata.Args{
			"health": float64(cfg.Player.Health),
			"speed":  cfg.Player.FallbackSpeed,
		})
		levelData.Player = components.NewHandle(p)
		levelData.Entities = append(levelData.Entities, p)
	}

	components.Level.Set(level, levelData)
	return level
}
