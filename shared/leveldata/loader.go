package leveldata

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// DefaultPath is the builtin level used when no level is requested.
const DefaultPath = "levels/default.json"

//go:embed levels/*.json
var builtin embed.FS

// Builtin returns the filesystem holding the bundled levels.
func Builtin() fs.FS { return builtin }

// Load reads a level from fsys, choosing the parser by file extension. It
// takes an fs.FS so callers can pass the embedded levels or os.DirFS.
func Load(fsys fs.FS, levelPath string) (*Level, error) {
	var (
		lvl *Level
		err error
	)
	switch strings.ToLower(path.Ext(levelPath)) {
	case ".json":
		var data []byte
		data, err = fs.ReadFile(fsys, levelPath)
		if err != nil {
			return nil, fmt.Errorf("read level %s: %w", levelPath, err)
		}
		lvl, err = ParseJSON(data)
	case ".tmx":
		lvl, err = LoadTMX(fsys, levelPath)
	default:
		return nil, fmt.Errorf("level %s: %w", levelPath, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}
	lvl.Path = levelPath
	return lvl, nil
}

// Default returns a fresh copy of the builtin default level.
func Default() *Level {
	lvl, err := Load(builtin, DefaultPath)
	if err != nil {
		panic("builtin level is broken: " + err.Error())
	}
	return lvl
}

// Resolver loads levels from an ordered list of filesystems; the first one
// holding the path wins.
type Resolver struct {
	Sources []fs.FS
}

// NewResolver returns a resolver that searches sources, then the builtin
// levels.
func NewResolver(sources ...fs.FS) *Resolver {
	return &Resolver{Sources: append(sources, builtin)}
}

// Load resolves levelPath against each source in order.
func (r *Resolver) Load(levelPath string) (*Level, error) {
	if levelPath == "" {
		return Default(), nil
	}
	levelPath = strings.TrimPrefix(path.Clean(strings.ReplaceAll(levelPath, "\\", "/")), "./")
	for _, src := range r.Sources {
		if _, err := fs.Stat(src, levelPath); err != nil {
			continue
		}
		return Load(src, levelPath)
	}
	return nil, fmt.Errorf("level %s: %w", levelPath, fs.ErrNotExist)
}

var (
	tmxStringArgs = []string{"variant", "kind", "target", "text"}
	tmxFloatArgs  = []string{"health", "speed", "amount"}
)

// LoadTMX parses a Tiled map. Each tile layer is named after a tile kind and
// each object group after an entity kind; object properties become args.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("map size: %w", ErrMissingField)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		kind := TileKind(strings.ToLower(layer.Name))
		if !kind.Known() {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				idx := y*levelMap.Width + x
				if idx >= len(layer.Tiles) || layer.Tiles[idx].IsNil() {
					continue
				}
				lvl.Tiles = append(lvl.Tiles, Tile{
					Kind: kind,
					X:    float64(x) * tileW,
					Y:    float64(y) * tileH,
					W:    tileW,
					H:    tileH,
				})
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		kind := EntityKind(strings.ToLower(og.Name))
		if !kind.Known() {
			continue
		}
		for _, o := range og.Objects {
			args := Args{}
			for _, key := range tmxStringArgs {
				if v := o.Properties.GetString(key); v != "" {
					args[key] = v
				}
			}
			for _, key := range tmxFloatArgs {
				if v := o.Properties.GetFloat(key); v != 0 {
					args[key] = v
				}
			}
			if kind == EntityBlock && o.Width > 0 && o.Height > 0 {
				args["w"] = o.Width
				args["h"] = o.Height
			}
			lvl.Entities = append(lvl.Entities, Entity{Kind: kind, X: o.X, Y: o.Y, Args: args})
		}
	}

	return lvl, nil
}

// IsMissing reports whether err came from an absent level file.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
