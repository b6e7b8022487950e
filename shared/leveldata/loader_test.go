package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	src := []byte(`{
		"name": "Test",
		"width": 640, "height": 480,
		"tiles": [
			{"type": "solid", "x": 0, "y": 448, "w": 640, "h": 32, "path": "none"},
			{"type": "lava", "x": 0, "y": 0, "w": 32, "h": 32},
			{"x": 64, "y": 64, "w": 32, "h": 32}
		],
		"entities": [
			{"type": "Player", "x": 10, "y": 20, "args": {"health": 80}},
			{"type": "dragon", "x": 1, "y": 1},
			{"type": "sign", "x": 5, "y": 6, "args": {"text": "hi"}}
		]
	}`)

	lvl, err := ParseJSON(src)
	require.NoError(t, err)
	assert.Equal(t, "Test", lvl.Name)
	assert.Equal(t, 640.0, lvl.Width)
	assert.Equal(t, 480.0, lvl.Height)

	require.Len(t, lvl.Tiles, 2, "unknown tile kinds are dropped")
	assert.Equal(t, TileSolid, lvl.Tiles[0].Kind)
	assert.Equal(t, TileSolid, lvl.Tiles[1].Kind, "missing type defaults to solid")

	require.Len(t, lvl.Entities, 2, "unknown entity kinds are dropped")
	assert.Equal(t, EntityPlayer, lvl.Entities[0].Kind)
	assert.Equal(t, 80.0, lvl.Entities[0].Args.Float("health", 100))
	assert.Equal(t, "hi", lvl.Entities[1].Args.String("text", ""))
}

func TestParseJSONMissingFields(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no width", `{"height": 100}`},
		{"tile without w", `{"width": 10, "height": 10, "tiles": [{"type": "solid", "x": 0, "y": 0, "h": 5}]}`},
		{"entity without x", `{"width": 10, "height": 10, "entities": [{"type": "enemy", "y": 0}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.src))
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestParseJSONRejectsNegativeTile(t *testing.T) {
	_, err := ParseJSON([]byte(`{"width": 10, "height": 10, "tiles": [{"type": "solid", "x": 0, "y": 0, "w": -1, "h": 5}]}`))
	assert.ErrorIs(t, err, ErrInvalidTile)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(fstest.MapFS{"a.txt": {Data: []byte("x")}}, "a.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDefaultLevel(t *testing.T) {
	lvl := Default()
	assert.Equal(t, "Default", lvl.Name)
	assert.Equal(t, DefaultPath, lvl.Path)
	assert.Len(t, lvl.Tiles, 5)
	require.NotEmpty(t, lvl.Entities)
	assert.Equal(t, EntityPlayer, lvl.Entities[0].Kind)
}

func TestResolver(t *testing.T) {
	disk := fstest.MapFS{
		"custom.json": {Data: []byte(`{"name": "Custom", "width": 100, "height": 100}`)},
	}
	r := NewResolver(disk)

	lvl, err := r.Load("./custom.json")
	require.NoError(t, err)
	assert.Equal(t, "Custom", lvl.Name)

	lvl, err = r.Load("levels/arena.json")
	require.NoError(t, err)
	assert.Equal(t, "Arena", lvl.Name)

	lvl, err = r.Load("")
	require.NoError(t, err)
	assert.Equal(t, "Default", lvl.Name)

	_, err = r.Load("nowhere.json")
	assert.True(t, IsMissing(err))
}

func TestLoadTMX(t *testing.T) {
	lvl, err := Load(os.DirFS("testdata"), "small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", lvl.Name)
	assert.Equal(t, 128.0, lvl.Width)
	assert.Equal(t, 96.0, lvl.Height)

	require.Len(t, lvl.Tiles, 4, "only the solid layer is collision")
	for i, tile := range lvl.Tiles {
		assert.Equal(t, TileSolid, tile.Kind)
		assert.Equal(t, float64(i*32), tile.X)
		assert.Equal(t, 64.0, tile.Y)
	}

	require.Len(t, lvl.Entities, 2)
	assert.Equal(t, EntityPlayer, lvl.Entities[0].Kind)
	assert.Equal(t, EntityEnemy, lvl.Entities[1].Kind)
	assert.Equal(t, "jumper", lvl.Entities[1].Args.String("variant", ""))
	assert.Equal(t, 60.0, lvl.Entities[1].Args.Float("health", 0))
}

func TestTileKindClassification(t *testing.T) {
	assert.True(t, TileConveyorLeft.Blocks())
	assert.Equal(t, -1.0, TileConveyorLeft.Conveyor())
	assert.False(t, TileOneWay.Blocks())
	assert.True(t, TileOneWay.StopsProjectiles())
	assert.False(t, TileNoCollideImage.Blocks())
	assert.False(t, TileNoCollideImage.StopsProjectiles())
	assert.True(t, TileWater.Ground())
	assert.False(t, TileHazard.Ground())
}
