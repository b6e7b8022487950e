package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/fonts"
	"github.com/automoto/adventure/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collider in the space and prints the step
// counters.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Cull objects outside viewport
			if obj.X+obj.W < camX || obj.X > camX+float64(width) || obj.Y+obj.H < camY || obj.Y > camY+float64(height) {
				continue
			}
			x := obj.X - camX
			y := obj.Y - camY

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvEnemy), obj.HasTags(tags.ResolvBoss):
				c = color.RGBA{255, 0, 0, 255}
			case obj.HasTags(tags.ResolvProjectile):
				c = color.RGBA{0, 255, 0, 255}
			}

			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	step := getStep(ecs)
	level := getLevel(ecs)
	info := fmt.Sprintf("tick %d  t=%.1fs  entities %d  projectiles %d  grid refs %d",
		step.Tick, step.Elapsed, len(level.Entities), len(level.Projectiles), level.Index.Len())
	text.Draw(screen, info, fonts.Small.Get(), 10, height-10, cfg.White)
}
