package main

import (
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/fonts"
	"github.com/automoto/adventure/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var flagSkipMenu bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Open the game window",
	Long: `Open the game window on the given level, or the builtin one.

Controls:
  A/D, Left/Right - Move
  Space/W         - Jump (again in the air to double jump)
  J               - Shoot
  E               - Read signs, open doors
  S               - Crouch
  Esc/P           - Pause`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start the level without the title screen")
}

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	fonts.LoadDefaults()

	opts := scenes.Options{
		Loader: resolver(),
		Level:  levelArg(args),
		Seed:   flagSeed,
	}
	g := &Game{}
	if flagSkipMenu || opts.Level != "" {
		g.scene = scenes.NewPlatformerScene(g, opts)
	} else {
		g.scene = scenes.NewMenuScene(g, opts)
	}

	ebiten.SetWindowTitle("Adventure")
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetTPS(cfg.C.TPS)
	return ebiten.RunGame(g)
}
