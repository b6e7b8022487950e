package scenes

import (
	"sync"

	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/fonts"
	"github.com/automoto/adventure/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	notice       string
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, opts Options) *MenuScene {
	return &MenuScene{sceneChanger: sc, opts: opts}
}

// NewMenuSceneWithNotice creates a menu scene showing an error line.
func NewMenuSceneWithNotice(sc SceneChanger, opts Options, notice string) *MenuScene {
	return &MenuScene{sceneChanger: sc, opts: opts, notice: notice}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	if systems.GetInput(ms.ecs).JustPressed(cfg.ActionMenuSelect) {
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.opts))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	drawCentered(screen, "Adventure", fonts.Title, screen.Bounds().Dy()/3)
	drawCentered(screen, "Press Enter to start", fonts.Regular, screen.Bounds().Dy()/2)
	if ms.notice != "" {
		drawCentered(screen, ms.notice, fonts.Small, screen.Bounds().Dy()*3/4)
	}
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.AddSystem(systems.UpdateInput)
}

func drawCentered(screen *ebiten.Image, msg string, name fonts.FontName, y int) {
	face := name.Get()
	width := text.BoundString(face, msg).Dx() //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, msg, face, (screen.Bounds().Dx()-width)/2, y, cfg.White)
}
