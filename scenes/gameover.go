package scenes

import (
	"fmt"
	"sync"

	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/fonts"
	"github.com/automoto/adventure/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultScene is shown after the boss falls.
type ResultScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	level        string
	elapsed      float64
	once         sync.Once
}

func NewResultScene(sc SceneChanger, opts Options, level string, elapsed float64) *ResultScene {
	return &ResultScene{sceneChanger: sc, opts: opts, level: level, elapsed: elapsed}
}

func (rs *ResultScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if systems.GetInput(rs.ecs).JustPressed(cfg.ActionMenuSelect) {
		rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger, rs.opts))
	}
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	h := screen.Bounds().Dy()
	drawCentered(screen, cfg.Message.WinText, fonts.Title, h/3)
	drawCentered(screen, fmt.Sprintf("%s cleared in %.1fs", rs.level, rs.elapsed), fonts.Regular, h/2)
	drawCentered(screen, "Press Enter", fonts.Small, h*2/3)
}

func (rs *ResultScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())
	rs.ecs.AddSystem(systems.UpdateInput)
}
