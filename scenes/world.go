package scenes

import (
	"sync"

	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/core"
	"github.com/automoto/adventure/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs a session at a fixed step and draws it.
type PlatformerScene struct {
	ui           *ecs.ECS
	session      *core.Session
	sceneChanger SceneChanger
	opts         Options
	paused       bool
	debug        bool
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, opts Options) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, opts: opts}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.session == nil {
		return
	}
	ps.ui.Update()

	input := systems.GetInput(ps.ui)
	if input.JustPressed(cfg.ActionPause) {
		ps.paused = !ps.paused
	}
	if input.JustPressed(cfg.ActionDebug) {
		ps.debug = !ps.debug
	}
	if ps.paused {
		return
	}

	ps.session.Update(input.Snapshot(), 1/float64(cfg.C.TPS))

	world := ps.session.World()
	systems.UpdateCamera(world.ECS(), float64(cfg.C.Width), float64(cfg.C.Height))

	if ps.session.Finished() {
		ps.sceneChanger.ChangeScene(NewResultScene(ps.sceneChanger, ps.opts, world.Level().Name, world.Elapsed()))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Sky)

	if ps.session == nil {
		return
	}
	world := ps.session.World().ECS()
	systems.DrawLevel(world, screen)
	systems.DrawEntities(world, screen)
	systems.DrawHUD(world, screen)
	systems.DrawMessage(world, screen)
	if ps.debug {
		systems.DrawDebug(world, screen)
	}
	systems.DrawFade(screen, ps.session.Fade())
	if ps.paused {
		systems.DrawPause(screen)
	}
}

func (ps *PlatformerScene) configure() {
	session, err := core.NewSession(ps.opts.Loader, ps.opts.Level, ps.opts.Seed)
	if err != nil {
		log.Error("could not start level", "level", ps.opts.Level, "err", err)
		ps.sceneChanger.ChangeScene(NewMenuSceneWithNotice(ps.sceneChanger, ps.opts, err.Error()))
		return
	}
	ps.session = session

	ps.ui = ecs.NewECS(donburi.NewWorld())
	ps.ui.AddSystem(systems.UpdateInput)
}
