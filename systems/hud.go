package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

var boxColor = color.RGBA{0, 0, 0, 180}

// DrawHUD renders the player's health bar, unlocked abilities, the level
// name and the boss bar when a boss is alive.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	level := getLevel(ecs)
	small := fonts.Small.Get()

	if player, ok := level.Player.Get(); ok {
		hp := components.Health.Get(player)
		drawBar(screen, hudMargin, hudMargin, hudBarWidth, hp.Ratio(), cfg.Green)

		abilities := ""
		data := components.Player.Get(player)
		if data.Fireball {
			abilities += " [fire]"
		}
		if data.DoubleJump {
			abilities += " [jump]"
		}
		if data.Key {
			abilities += " [key]"
		}
		label := fmt.Sprintf("%d/%d%s", hp.Current, hp.Max, abilities)
		text.Draw(screen, label, small, hudMargin, hudMargin+hudBarHeight+14, cfg.White)
	}

	width := screen.Bounds().Dx()
	nameWidth := text.BoundString(small, level.Name).Dx()
	text.Draw(screen, level.Name, small, width-nameWidth-hudMargin, hudMargin+10, cfg.Gray)

	if boss, ok := level.Boss.Get(); ok {
		barWidth := width / 2
		x := (width - barWidth) / 2
		y := screen.Bounds().Dy() - hudMargin - hudBarHeight
		c := cfg.Purple
		if components.Boss.Get(boss).Phase >= 2 {
			c = cfg.Red
		}
		drawBar(screen, x, y, barWidth, components.Health.Get(boss).Ratio(), c)
	}
}

func drawBar(screen *ebiten.Image, x, y, width int, ratio float64, fill color.RGBA) {
	vector.DrawFilledRect(screen,
		float32(x), float32(y),
		float32(width), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen,
		float32(x), float32(y),
		float32(width)*float32(ratio), float32(hudBarHeight),
		fill, false)
}

// DrawMessage renders the active message at the top center of the screen.
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		return
	}
	state := components.MessageState.Get(entry)
	if !state.Active() {
		return
	}
	drawTextBox(screen, state.Text, fonts.Bold, 48)
}

// DrawFade darkens the screen by alpha in [0, 1].
func DrawFade(screen *ebiten.Image, alpha float32) {
	if alpha <= 0 {
		return
	}
	a := uint8(min(1, alpha) * 255)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, a}, false)
}

// DrawPause renders the pause overlay.
func DrawPause(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 140}, false)
	drawTextBox(screen, "Paused", fonts.Title, h/2-24)
}

func drawTextBox(screen *ebiten.Image, msg string, name fonts.FontName, top int) {
	face := name.Get()
	bounds := text.BoundString(face, msg) //nolint:staticcheck // TODO: migrate to text/v2
	padding := 8

	boxWidth := bounds.Dx() + padding*2
	boxHeight := bounds.Dy() + padding*2
	boxX := (screen.Bounds().Dx() - boxWidth) / 2

	vector.FillRect(screen, float32(boxX), float32(top), float32(boxWidth), float32(boxHeight), boxColor, false)
	text.Draw(screen, msg, face, boxX+padding, top+padding+bounds.Dy(), cfg.White)
}
