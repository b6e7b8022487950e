package systems

import (
	"image/color"

	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/gamemath"
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var tileColors = map[leveldata.TileKind]color.RGBA{
	leveldata.TileSolid:          cfg.Gray,
	leveldata.TileOneWay:         cfg.Orange,
	leveldata.TileWater:          {40, 90, 200, 140},
	leveldata.TileHazard:         cfg.Red,
	leveldata.TileIce:            cfg.Cyan,
	leveldata.TileConveyorLeft:   cfg.Yellow,
	leveldata.TileConveyorRight:  cfg.Yellow,
	leveldata.TileCollideImage:   {110, 110, 120, 255},
	leveldata.TileNoCollideImage: {60, 60, 70, 255},
}

// viewport is the visible world rectangle, padded so boxes do not pop at
// the edges.
func viewport(ecs *ecs.ECS, screen *ebiten.Image) (gamemath.AABB, float64, float64) {
	camX, camY := cameraOffset(ecs)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	padding := 64.0
	view := gamemath.NewAABB(camX-padding, camY-padding, float64(width)+2*padding, float64(height)+2*padding)
	return view, camX, camY
}

// DrawLevel renders every tile inside the viewport.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	level := getLevel(ecs)
	view, camX, camY := viewport(ecs, screen)

	for _, t := range level.Tiles {
		if !view.Intersects(t.AABB) {
			continue
		}
		c, ok := tileColors[t.Kind]
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen, float32(t.X-camX), float32(t.Y-camY), float32(t.W), float32(t.H), c, false)
		if dir := t.Kind.Conveyor(); dir != 0 {
			// Arrow stub in the belt's direction
			cx := t.CenterX() - camX
			vector.DrawFilledRect(screen, float32(cx+dir*4-2), float32(t.Y-camY+2), 4, 4, cfg.Black, false)
		}
	}
}

// DrawEntities renders entities and projectiles as colored boxes, with a
// health bar over damaged creatures.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	level := getLevel(ecs)
	view, camX, camY := viewport(ecs, screen)

	draw := func(e *donburi.Entry) {
		if !e.Valid() {
			return
		}
		o := components.Object.Get(e)
		if o.RemoveRequested || !view.Intersects(o.AABB) {
			return
		}

		c := entityColor(e)
		if e.HasComponent(components.Health) {
			// Blink while invulnerable
			if iframes := components.Health.Get(e).IFrames; iframes > 0 && int(iframes*10)%2 == 0 {
				c = color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A / 2}
			}
		}
		x, y := float32(o.X-camX), float32(o.Y-camY)
		vector.DrawFilledRect(screen, x, y, float32(o.W), float32(o.H), c, false)

		// Facing marker
		if e.HasComponent(components.Physics) && !e.HasComponent(components.Projectile) {
			eyeX := float32(o.CenterX()-camX) + float32(o.Facing)*float32(o.W)/4 - 2
			vector.DrawFilledRect(screen, eyeX, y+float32(o.H)/4, 4, 4, cfg.White, false)
		}

		if e.HasComponent(components.Health) && !e.HasComponent(components.Player) {
			drawHealthBar(screen, o, components.Health.Get(e), camX, camY)
		}
	}

	for _, e := range level.Entities {
		draw(e)
	}
	for _, e := range level.Projectiles {
		draw(e)
	}
}

func entityColor(e *donburi.Entry) color.RGBA {
	switch {
	case e.HasComponent(components.Player):
		return cfg.Blue
	case e.HasComponent(components.Boss):
		if components.Boss.Get(e).Phase >= 2 {
			return cfg.Red
		}
		return cfg.Purple
	case e.HasComponent(components.Enemy):
		return cfg.Green
	case e.HasComponent(components.Projectile):
		if components.Projectile.Get(e).Friendly {
			return cfg.Orange
		}
		return cfg.Red
	case e.HasComponent(components.Item):
		return cfg.Yellow
	case e.HasComponent(components.Door):
		if components.Door.Get(e).PlayerOverlapping {
			return cfg.White
		}
		return color.RGBA{140, 90, 50, 255}
	case e.HasComponent(components.Sign):
		return color.RGBA{190, 150, 90, 255}
	}
	return cfg.Gray
}

func drawHealthBar(screen *ebiten.Image, o *components.ObjectData, hp *components.HealthData, camX, camY float64) {
	if hp.Current >= hp.Max {
		return
	}
	barWidth := 32.0
	barHeight := 4.0
	// Position the bar above the entity's collision box
	drawX := o.X + (o.W-barWidth)/2 - camX
	drawY := o.Y - barHeight - 4 - camY

	vector.DrawFilledRect(screen, float32(drawX), float32(drawY), float32(barWidth), float32(barHeight), cfg.Red, false)
	vector.DrawFilledRect(screen, float32(drawX), float32(drawY), float32(barWidth*hp.Ratio()), float32(barHeight), cfg.Green, false)
}
