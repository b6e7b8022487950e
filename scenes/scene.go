package scenes

import (
	"github.com/automoto/adventure/core"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}

// Options carries what every gameplay scene needs to start a session.
type Options struct {
	Loader core.LevelLoader
	Level  string // Empty for the builtin default
	Seed   int64
}
