package leveldata

import (
	"encoding/json"
	"fmt"
	"strings"
)

type jsonLevel struct {
	Name     string       `json:"name"`
	Width    *float64     `json:"width"`
	Height   *float64     `json:"height"`
	Tiles    []jsonTile   `json:"tiles"`
	Entities []jsonEntity `json:"entities"`
}

type jsonTile struct {
	Type string   `json:"type"`
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
	W    *float64 `json:"w"`
	H    *float64 `json:"h"`
	Path string   `json:"path"`
}

type jsonEntity struct {
	Type string         `json:"type"`
	X    *float64       `json:"x"`
	Y    *float64       `json:"y"`
	Args map[string]any `json:"args"`
}

// ParseJSON parses the JSON level format. Tiles and entities of unknown kind
// are skipped. A missing tile type defaults to solid.
func ParseJSON(data []byte) (*Level, error) {
	var raw jsonLevel
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if raw.Width == nil || raw.Height == nil {
		return nil, fmt.Errorf("level width/height: %w", ErrMissingField)
	}

	lvl := &Level{
		Name:   raw.Name,
		Width:  *raw.Width,
		Height: *raw.Height,
	}
	if lvl.Name == "" {
		lvl.Name = "Unnamed"
	}

	for i, t := range raw.Tiles {
		if t.X == nil || t.Y == nil || t.W == nil || t.H == nil {
			return nil, fmt.Errorf("tile %d x/y/w/h: %w", i, ErrMissingField)
		}
		if *t.W < 0 || *t.H < 0 {
			return nil, fmt.Errorf("tile %d size %vx%v: %w", i, *t.W, *t.H, ErrInvalidTile)
		}
		kind := TileKind(strings.ToLower(t.Type))
		if kind == "" {
			kind = TileSolid
		}
		if !kind.Known() {
			continue
		}
		lvl.Tiles = append(lvl.Tiles, Tile{Kind: kind, X: *t.X, Y: *t.Y, W: *t.W, H: *t.H})
	}

	for i, e := range raw.Entities {
		kind := EntityKind(strings.ToLower(e.Type))
		if !kind.Known() {
			continue
		}
		if e.X == nil || e.Y == nil {
			return nil, fmt.Errorf("entity %d (%s) x/y: %w", i, kind, ErrMissingField)
		}
		args := Args(e.Args)
		if args == nil {
			args = Args{}
		}
		lvl.Entities = append(lvl.Entities, Entity{Kind: kind, X: *e.X, Y: *e.Y, Args: args})
	}

	return lvl, nil
}
