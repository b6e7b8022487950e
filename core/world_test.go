package core

import (
	"math"
	"testing"

	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const testDT = 1.0 / 60

func quietEnemies(t *testing.T) {
	t.Helper()
	cfg.Enemy.ShootChance = 0
	t.Cleanup(cfg.Reset)
}

func floorTile() leveldata.Tile {
	return leveldata.Tile{Kind: leveldata.TileSolid, X: 0, Y: 200, W: 640, H: 32}
}

func testLevel(tiles []leveldata.Tile, entities ...leveldata.Entity) *leveldata.Level {
	return &leveldata.Level{
		Name:     "Test",
		Width:    640,
		Height:   300,
		Tiles:    tiles,
		Entities: entities,
	}
}

func playerAt(x, y float64) leveldata.Entity {
	return leveldata.Entity{Kind: leveldata.EntityPlayer, X: x, Y: y, Args: leveldata.Args{}}
}

func run(w *World, in components.InputSnapshot, ticks int) StepResult {
	var res StepResult
	for i := 0; i < ticks; i++ {
		res = w.Step(in, testDT)
	}
	return res
}

func mustPlayer(t *testing.T, w *World) *donburi.Entry {
	t.Helper()
	p, ok := w.Player()
	require.True(t, ok, "player should be alive")
	return p
}

func TestPlayerRestsOnFloorWithoutPenetration(t *testing.T) {
	w := NewWorld(testLevel([]leveldata.Tile{floorTile()}, playerAt(100, 100)), 1)
	p := mustPlayer(t, w)
	obj := components.Object.Get(p)

	for i := 0; i < 120; i++ {
		w.Step(components.InputSnapshot{}, testDT)
		assert.LessOrEqual(t, obj.Bottom(), 200.0+1e-9, "tick %d", i)
	}

	physics := components.Physics.Get(p)
	assert.True(t, physics.OnGround)
	assert.InDelta(t, 200.0, obj.Bottom(), 1e-6)
	assert.Equal(t, leveldata.TileSolid, physics.Support)
}

func TestWallStopsHorizontalMotion(t *testing.T) {
	wall := leveldata.Tile{Kind: leveldata.TileSolid, X: 300, Y: 0, W: 32, H: 200}
	w := NewWorld(testLevel([]leveldata.Tile{floorTile(), wall}, playerAt(200, 168)), 1)
	obj := components.Object.Get(mustPlayer(t, w))

	for i := 0; i < 120; i++ {
		w.Step(components.InputSnapshot{MoveX: 1}, testDT)
		assert.LessOrEqual(t, obj.Right(), 300.0+1e-9, "tick %d", i)
	}
	assert.InDelta(t, 300.0, obj.Right(), 1e-6)
}

func TestSpeedNeverExceedsMax(t *testing.T) {
	w := NewWorld(testLevel([]leveldata.Tile{floorTile()}, playerAt(50, 168)), 1)
	p := mustPlayer(t, w)
	physics := components.Physics.Get(p)

	for i := 0; i < 90; i++ {
		w.Step(components.InputSnapshot{MoveX: 1}, testDT)
		assert.LessOrEqual(t, physics.SpeedX, physics.MaxSpeed)
	}
	assert.InDelta(t, cfg.Player.MaxSpeed, physics.SpeedX, 1e-9)
	assert.LessOrEqual(t, components.Object.Get(p).Right(), 640.0)
}

func TestDoubleJumpResetsOnLanding(t *testing.T) {
	w := NewWorld(testLevel([]leveldata.Tile{floorTile()}, playerAt(100, 168)), 1)
	physics := components.Physics.Get(mustPlayer(t, w))

	run(w, components.InputSnapshot{}, 30)
	require.True(t, physics.OnGround)
	require.True(t, physics.CanDoubleJump)

	jump := components.InputSnapshot{Jump: true}
	w.Step(jump, testDT)
	assert.False(t, physics.OnGround)
	assert.Equal(t, cfg.Physics.JumpPower, physics.SpeedY)

	run(w, components.InputSnapshot{}, 10)
	w.Step(jump, testDT)
	assert.Equal(t, cfg.Physics.DoubleJumpPower, physics.SpeedY)
	assert.False(t, physics.CanDoubleJump)

	// A third jump in the air is dropped.
	w.Step(jump, testDT)
	assert.Greater(t, physics.SpeedY, cfg.Physics.DoubleJumpPower)
	assert.False(t, physics.CanDoubleJump)

	run(w, components.InputSnapshot{}, 180)
	assert.True(t, physics.OnGround)
	assert.True(t, physics.CanDoubleJump)
}

func TestOneWayPlatform(t *testing.T) {
	platform := leveldata.Tile{Kind: leveldata.TileOneWay, X: 64, Y: 120, W: 128, H: 16}

	t.Run("lands from above", func(t *testing.T) {
		w := NewWorld(testLevel([]leveldata.Tile{floorTile(), platform}, playerAt(100, 40)), 1)
		p := mustPlayer(t, w)
		run(w, components.InputSnapshot{}, 60)
		assert.InDelta(t, 120.0, components.Object.Get(p).Bottom(), 1e-6)
		assert.Equal(t, leveldata.TileOneWay, components.Physics.Get(p).Support)
	})

	t.Run("passes through from below", func(t *testing.T) {
		w := NewWorld(testLevel([]leveldata.Tile{floorTile(), platform}, playerAt(100, 168)), 1)
		p := mustPlayer(t, w)
		obj := components.Object.Get(p)
		run(w, components.InputSnapshot{}, 5)

		w.Step(components.InputSnapshot{Jump: true}, testDT)
		minTop := obj.Y
		for i := 0; i < 60; i++ {
			w.Step(components.InputSnapshot{}, testDT)
			minTop = min(minTop, obj.Y)
		}
		// The jump apex clears the platform top, so the player went through it.
		assert.Less(t, minTop, 120.0)
		assert.InDelta(t, 120.0, obj.Bottom(), 1e-6)
	})
}

func TestRemovedGroundLetsGravityAct(t *testing.T) {
	w := NewWorld(testLevel([]leveldata.Tile{floorTile()}, playerAt(100, 168)), 1)
	p := mustPlayer(t, w)
	run(w, components.InputSnapshot{}, 10)
	require.True(t, components.Physics.Get(p).OnGround)

	w.Level().Tiles = nil
	run(w, components.InputSnapshot{}, 5)

	physics := components.Physics.Get(p)
	assert.False(t, physics.OnGround)
	assert.Greater(t, physics.SpeedY, 0.0)
	assert.Greater(t, components.Object.Get(p).Bottom(), 200.0)
}

func TestWaterBuoyancy(t *testing.T) {
	pool := leveldata.Tile{Kind: leveldata.TileWater, X: 0, Y: 100, W: 640, H: 100}
	w := NewWorld(testLevel([]leveldata.Tile{floorTile(), pool}, playerAt(100, 120)), 1)
	p := mustPlayer(t, w)

	obj := components.Object.Get(p)

	w.Step(components.InputSnapshot{}, testDT)
	assert.True(t, components.Physics.Get(p).InWater)

	minY := obj.Y
	for i := 0; i < 30; i++ {
		w.Step(components.InputSnapshot{}, testDT)
		minY = min(minY, obj.Y)
	}
	assert.Less(t, minY, 120.0, "buoyancy pushes up")
}

func TestConveyorCarriesIdlePlayer(t *testing.T) {
	belt := leveldata.Tile{Kind: leveldata.TileConveyorRight, X: 0, Y: 200, W: 640, H: 32}
	w := NewWorld(testLevel([]leveldata.Tile{belt}, playerAt(100, 168)), 1)
	p := mustPlayer(t, w)
	obj := components.Object.Get(p)

	run(w, components.InputSnapshot{}, 2)
	start := obj.X
	run(w, components.InputSnapshot{}, 60)

	assert.InDelta(t, cfg.Physics.ConveyorSpeed, obj.X-start, 1)
	assert.InDelta(t, 200.0, obj.Bottom(), 1e-6)
}

func TestConveyorNeverPushesIntoWall(t *testing.T) {
	belt := leveldata.Tile{Kind: leveldata.TileConveyorRight, X: 0, Y: 200, W: 640, H: 32}
	wall := leveldata.Tile{Kind: leveldata.TileSolid, X: 300, Y: 0, W: 32, H: 200}
	w := NewWorld(testLevel([]leveldata.Tile{belt, wall}, playerAt(260, 168)), 1)
	obj := components.Object.Get(mustPlayer(t, w))

	for i := 0; i < 120; i++ {
		w.Step(components.InputSnapshot{}, testDT)
		assert.LessOrEqual(t, obj.Right(), 300.0+1e-9, "tick %d", i)
	}
	assert.InDelta(t, 300.0, obj.Right(), 1e-6)
}

func TestHazardHurtsThroughIFrames(t *testing.T) {
	spikes := leveldata.Tile{Kind: leveldata.TileHazard, X: 0, Y: 190, W: 640, H: 10}
	w := NewWorld(testLevel([]leveldata.Tile{floorTile(), spikes}, playerAt(100, 168)), 1)
	p := mustPlayer(t, w)
	health := components.Health.Get(p)

	w.Step(components.InputSnapshot{}, testDT)
	assert.Equal(t, cfg.Player.Health-cfg.Physics.HazardDamage, health.Current)
	assert.Greater(t, health.IFrames, 0.0)

	// Still invulnerable shortly after.
	run(w, components.InputSnapshot{}, 10)
	assert.Equal(t, cfg.Player.Health-cfg.Physics.HazardDamage, health.Current)
}

func TestPatrollerStaysOnNarrowPlatform(t *testing.T) {
	quietEnemies(t)
	platform := leveldata.Tile{Kind: leveldata.TileSolid, X: 200, Y: 150, W: 96, H: 32}
	lvl := testLevel([]leveldata.Tile{floorTile(), platform},
		playerAt(560, 168),
		leveldata.Entity{Kind: leveldata.EntityEnemy, X: 230, Y: 110, Args: leveldata.Args{"variant": "patroller"}},
	)
	w := NewWorld(lvl, 1)
	enemy := w.Level().Entities[1]
	obj := components.Object.Get(enemy)

	for i := 0; i < 600; i++ {
		w.Step(components.InputSnapshot{}, testDT)
		require.True(t, enemy.Valid())
		assert.InDelta(t, 150.0, obj.Bottom(), 1e-6, "tick %d", i)
		assert.Greater(t, obj.Right(), 200.0)
		assert.Less(t, obj.Left(), 296.0)
	}
}

func enemyAt(x float64, args leveldata.Args) leveldata.Entity {
	return leveldata.Entity{Kind: leveldata.EntityEnemy, X: x, Y: 160, Args: args}
}

func TestJumperTimerAndDrift(t *testing.T) {
	quietEnemies(t)
	lvl := testLevel([]leveldata.Tile{floorTile()},
		playerAt(40, 168),
		enemyAt(400, leveldata.Args{"variant": "jumper"}),
	)
	w := NewWorld(lvl, 7)
	jumper := w.Level().Entities[1]
	data := components.Enemy.Get(jumper)
	obj := components.Object.Get(jumper)

	first := data.JumpTimer
	assert.GreaterOrEqual(t, first, cfg.Enemy.FirstJumpMin)
	assert.LessOrEqual(t, first, cfg.Enemy.FirstJumpMax)

	w.Step(components.InputSnapshot{}, testDT)
	assert.Equal(t, -1.0, obj.Facing)
	assert.Equal(t, -cfg.Enemy.JumperDrift, components.Control.Get(jumper).MoveIntent)

	jumps := 0
	prev := data.JumpTimer
	for i := 0; i < 400 && jumper.Valid(); i++ {
		w.Step(components.InputSnapshot{}, testDT)
		if data.JumpTimer > prev {
			jumps++
			assert.GreaterOrEqual(t, data.JumpTimer, cfg.Enemy.JumpIntervalMin)
			assert.LessOrEqual(t, data.JumpTimer, cfg.Enemy.JumpIntervalMax)
		}
		prev = data.JumpTimer
	}
	assert.GreaterOrEqual(t, jumps, 2)
	assert.Less(t, obj.X, 400.0, "drifts towards the player")
}

func TestWanderersAreOutOfPhase(t *testing.T) {
	quietEnemies(t)
	lvl := testLevel([]leveldata.Tile{floorTile()},
		playerAt(600, 168),
		enemyAt(150, leveldata.Args{"variant": "wanderer"}),
		enemyAt(350, leveldata.Args{"variant": "wanderer"}),
	)
	w := NewWorld(lvl, 1)
	a, b := w.Level().Entities[1], w.Level().Entities[2]
	assert.Equal(t, 1.0, components.Enemy.Get(a).PhaseOffset)
	assert.Equal(t, 2.0, components.Enemy.Get(b).PhaseOffset)

	w.Step(components.InputSnapshot{}, testDT)
	intentA := components.Control.Get(a).MoveIntent
	intentB := components.Control.Get(b).MoveIntent
	assert.InDelta(t, math.Sin(testDT+1), intentA, 1e-9)
	assert.InDelta(t, math.Sin(testDT+2), intentB, 1e-9)
	assert.NotEqual(t, intentA, intentB)
}

func TestEnemyRangedShotWindow(t *testing.T) {
	ledge := leveldata.Tile{Kind: leveldata.TileSolid, X: 200, Y: 40, W: 128, H: 16}
	tests := []struct {
		name    string
		player  leveldata.Entity
		enemyX  float64
		shoots  bool
		towards float64
	}{
		{"inside the window", playerAt(100, 168), 300, true, -1},
		{"inside, to the right", playerAt(500, 168), 300, true, 1},
		{"too far horizontally", playerAt(560, 168), 100, false, 0},
		{"too far vertically", playerAt(250, 8), 300, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg.Enemy.ShootChance = 1
			t.Cleanup(cfg.Reset)

			lvl := testLevel([]leveldata.Tile{floorTile(), ledge}, tt.player, enemyAt(tt.enemyX, leveldata.Args{}))
			w := NewWorld(lvl, 1)

			res := w.Step(components.InputSnapshot{}, testDT)
			if !tt.shoots {
				assert.Zero(t, res.Spawned)
				return
			}
			assert.Equal(t, 1, res.Spawned)
			require.Len(t, w.Level().Projectiles, 1)
			shot := w.Level().Projectiles[0]
			assert.False(t, components.Projectile.Get(shot).Friendly)
			assert.Equal(t, cfg.Enemy.Shot.Damage, components.Projectile.Get(shot).Damage)
			assert.Equal(t, tt.towards*cfg.Enemy.Shot.Speed, components.Physics.Get(shot).SpeedX)
		})
	}
}

func TestEnemyContactDamage(t *testing.T) {
	quietEnemies(t)
	tests := []struct {
		name       string
		enemyX     float64
		knockbackX float64
	}{
		{"enemy on the right pushes left", 110, -cfg.Enemy.KnockbackX},
		{"enemy on the left pushes right", 90, cfg.Enemy.KnockbackX},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := testLevel([]leveldata.Tile{floorTile()}, playerAt(100, 168), enemyAt(tt.enemyX, leveldata.Args{}))
			w := NewWorld(lvl, 1)
			p := mustPlayer(t, w)
			health := components.Health.Get(p)

			w.Step(components.InputSnapshot{}, testDT)
			assert.Equal(t, cfg.Player.Health-cfg.Enemy.ContactDamage, health.Current)
			physics := components.Physics.Get(p)
			assert.Equal(t, tt.knockbackX, physics.SpeedX)
			assert.Equal(t, cfg.Enemy.KnockbackY, physics.SpeedY)

			// Still touching, but inside the damage cooldown.
			w.Step(components.InputSnapshot{}, testDT)
			require.True(t, components.Object.Get(p).Intersects(components.Object.Get(w.Level().Entities[1]).AABB))
			assert.Equal(t, cfg.Player.Health-cfg.Enemy.ContactDamage, health.Current)
		})
	}
}

func TestPlayerProjectileHitsOnce(t *testing.T) {
	quietEnemies(t)
	enemy := leveldata.Entity{Kind: leveldata.EntityEnemy, X: 300, Y: 160, Args: leveldata.Args{}}
	lvl := testLevel([]leveldata.Tile{floorTile()}, playerAt(100, 168), enemy, enemy)
	w := NewWorld(lvl, 1)
	enemies := w.Level().Entities[1:3]

	res := w.Step(components.InputSnapshot{Shoot: true}, testDT)
	assert.Equal(t, 1, res.Spawned)
	require.Len(t, w.Level().Projectiles, 1)

	run(w, components.InputSnapshot{}, 60)

	damage := 0
	for _, e := range enemies {
		h := components.Health.Get(e)
		damage += h.Max - h.Current
	}
	assert.Equal(t, cfg.Projectile.Fireball.Damage, damage)
	assert.Empty(t, w.Level().Projectiles)
}

func TestFireCooldownLimitsShots(t *testing.T) {
	w := NewWorld(testLevel([]leveldata.Tile{floorTile()}, playerAt(100, 168)), 1)

	var shotTicks []int
	for tick := 1; tick <= 30; tick++ {
		if w.Step(components.InputSnapshot{Shoot: true}, testDT).Spawned > 0 {
			shotTicks = append(shotTicks, tick)
		}
	}
	// 0.25s at 60 ticks/s: the second shot lands 15 ticks after the first,
	// give or take one tick of float rounding in the cooldown.
	require.Len(t, shotTicks, 2)
	assert.Equal(t, 1, shotTicks[0])
	assert.InDelta(t, 16, shotTicks[1], 1)
}

func bossLevel(bossArgs leveldata.Args) *leveldata.Level {
	return testLevel([]leveldata.Tile{floorTile()},
		playerAt(100, 168),
		leveldata.Entity{Kind: leveldata.EntityBoss, X: 500, Y: 136, Args: bossArgs},
	)
}

func TestBossFiresFanOfFive(t *testing.T) {
	w := NewWorld(bossLevel(leveldata.Args{}), 1)
	boss, ok := w.Boss()
	require.True(t, ok)
	health := components.Health.Get(boss)
	health.Current = int(float64(health.Max) * 0.49)

	res := w.Step(components.InputSnapshot{}, testDT)
	assert.Equal(t, 5, res.Spawned)
	require.Len(t, w.Level().Projectiles, 5)
	require.Len(t, cfg.Boss.FanAngles, 5)
	assert.Equal(t, 2, components.Boss.Get(boss).Phase)

	for i, p := range w.Level().Projectiles {
		data := components.Projectile.Get(p)
		assert.False(t, data.Friendly)
		assert.True(t, data.Owner.Is(boss))
		assert.Equal(t, cfg.Boss.Shot.Damage, data.Damage)

		physics := components.Physics.Get(p)
		assert.Equal(t, -cfg.Boss.Shot.Speed, physics.SpeedX, "fired towards the player")
		want := math.Tan(cfg.Boss.FanAngles[i]) * math.Abs(physics.SpeedX)
		assert.InDelta(t, want, physics.SpeedY, 1e-9, "angle %v", cfg.Boss.FanAngles[i])
	}

	res = w.Step(components.InputSnapshot{}, testDT)
	assert.Zero(t, res.Spawned, "cooldown holds the next volley")
}

func TestBossContactDamage(t *testing.T) {
	tests := []struct {
		name       string
		bossX      float64
		knockbackX float64
	}{
		{"boss on the right pushes left", 110, -cfg.Boss.KnockbackX},
		{"boss on the left pushes right", 60, cfg.Boss.KnockbackX},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := testLevel([]leveldata.Tile{floorTile()},
				playerAt(100, 168),
				leveldata.Entity{Kind: leveldata.EntityBoss, X: tt.bossX, Y: 136, Args: leveldata.Args{}},
			)
			w := NewWorld(lvl, 1)
			p := mustPlayer(t, w)

			w.Step(components.InputSnapshot{}, testDT)

			assert.Equal(t, cfg.Player.Health-cfg.Boss.ContactDamage, components.Health.Get(p).Current)
			physics := components.Physics.Get(p)
			assert.Equal(t, tt.knockbackX, physics.SpeedX)
			assert.Equal(t, cfg.Boss.KnockbackY, physics.SpeedY)
		})
	}
}

func TestBossPhaseNeverReverts(t *testing.T) {
	w := NewWorld(bossLevel(leveldata.Args{}), 1)
	boss, ok := w.Boss()
	require.True(t, ok)
	data := components.Boss.Get(boss)
	health := components.Health.Get(boss)

	w.Step(components.InputSnapshot{}, testDT)
	assert.Equal(t, 1, data.Phase)

	health.Current = health.Max/2 - 1
	w.Step(components.InputSnapshot{}, testDT)
	assert.Equal(t, 2, data.Phase)
	assert.Equal(t, cfg.Boss.EnragedMaxSpeed, components.Physics.Get(boss).MaxSpeed)

	health.Current = health.Max
	run(w, components.InputSnapshot{}, 10)
	assert.Equal(t, 2, data.Phase)
}

func TestItemPickup(t *testing.T) {
	tests := []struct {
		name  string
		args  leveldata.Args
		setup func(p *donburi.Entry)
		check func(t *testing.T, p *donburi.Entry)
	}{
		{
			name:  "health heals",
			args:  leveldata.Args{"kind": "health", "amount": 25.0},
			setup: func(p *donburi.Entry) { components.Health.Get(p).Current = 50 },
			check: func(t *testing.T, p *donburi.Entry) {
				assert.Equal(t, 75, components.Health.Get(p).Current)
			},
		},
		{
			name:  "health is capped",
			args:  leveldata.Args{"kind": "health", "amount": 25.0},
			setup: func(p *donburi.Entry) { components.Health.Get(p).Current = 90 },
			check: func(t *testing.T, p *donburi.Entry) {
				h := components.Health.Get(p)
				assert.Equal(t, h.Max, h.Current)
			},
		},
		{
			name: "speed adds to max speed",
			args: leveldata.Args{"kind": "speed"},
			check: func(t *testing.T, p *donburi.Entry) {
				assert.Equal(t, cfg.Player.MaxSpeed+cfg.Item.SpeedBoost, components.Physics.Get(p).MaxSpeed)
			},
		},
		{
			name: "key sets the flag",
			args: leveldata.Args{"kind": "key"},
			check: func(t *testing.T, p *donburi.Entry) {
				assert.True(t, components.Player.Get(p).Key)
			},
		},
		{
			name: "double jump",
			args: leveldata.Args{"kind": "double_jump"},
			check: func(t *testing.T, p *donburi.Entry) {
				assert.True(t, components.Player.Get(p).DoubleJump)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := testLevel([]leveldata.Tile{floorTile()},
				playerAt(100, 168),
				leveldata.Entity{Kind: leveldata.EntityItem, X: 100, Y: 168, Args: tt.args},
			)
			w := NewWorld(lvl, 1)
			p := mustPlayer(t, w)
			if tt.setup != nil {
				tt.setup(p)
			}

			res := w.Step(components.InputSnapshot{}, testDT)
			assert.Equal(t, 1, res.Removed)
			assert.Len(t, w.Level().Entities, 1)
			tt.check(t, p)
		})
	}
}

func TestSignSurfacesText(t *testing.T) {
	lvl := testLevel([]leveldata.Tile{floorTile()},
		playerAt(100, 168),
		leveldata.Entity{Kind: leveldata.EntitySign, X: 100, Y: 168, Args: leveldata.Args{"text": "Hello"}},
	)
	w := NewWorld(lvl, 1)

	res := w.Step(components.InputSnapshot{}, testDT)
	assert.Empty(t, res.SignText)

	res = w.Step(components.InputSnapshot{Interact: true}, testDT)
	assert.Equal(t, "Hello", res.SignText)
	assert.Equal(t, "Hello", w.Message().Text)
}

func TestDoorRequestsTransition(t *testing.T) {
	lvl := testLevel([]leveldata.Tile{floorTile()},
		playerAt(100, 168),
		leveldata.Entity{Kind: leveldata.EntityDoor, X: 90, Y: 104, Args: leveldata.Args{"target": "levels/next.json"}},
	)
	w := NewWorld(lvl, 1)

	res := w.Step(components.InputSnapshot{}, testDT)
	assert.Empty(t, res.Transition)
	door := w.Level().Entities[1]
	assert.True(t, components.Door.Get(door).PlayerOverlapping)

	res = w.Step(components.InputSnapshot{Interact: true}, testDT)
	assert.Equal(t, "levels/next.json", res.Transition)
}

func TestOutcome(t *testing.T) {
	t.Run("falling out of the world loses", func(t *testing.T) {
		w := NewWorld(testLevel(nil, playerAt(100, 100)), 1)
		var res StepResult
		for i := 0; i < 120 && !res.Outcome.Lost; i++ {
			res = w.Step(components.InputSnapshot{}, testDT)
		}
		assert.True(t, res.Outcome.Lost)
		assert.False(t, res.Outcome.Won)
		_, alive := w.Player()
		assert.False(t, alive)
	})

	t.Run("killing the boss wins", func(t *testing.T) {
		w := NewWorld(bossLevel(leveldata.Args{"health": 10.0}), 1)
		res := w.Step(components.InputSnapshot{Shoot: true}, testDT)
		for i := 0; i < 60 && !res.Outcome.Won; i++ {
			res = w.Step(components.InputSnapshot{}, testDT)
		}
		assert.True(t, res.Outcome.Won)
		_, alive := w.Boss()
		assert.False(t, alive)
	})

	t.Run("no boss never wins", func(t *testing.T) {
		w := NewWorld(testLevel([]leveldata.Tile{floorTile()}, playerAt(100, 168)), 1)
		res := run(w, components.InputSnapshot{}, 30)
		assert.False(t, res.Outcome.Won)
		assert.False(t, res.Outcome.Lost)
	})
}

func TestNonPositiveHealthArgsSpawnAlive(t *testing.T) {
	lvl := testLevel([]leveldata.Tile{floorTile()},
		leveldata.Entity{Kind: leveldata.EntityPlayer, X: 100, Y: 168, Args: leveldata.Args{"health": -5.0}},
		leveldata.Entity{Kind: leveldata.EntityBoss, X: 500, Y: 136, Args: leveldata.Args{"health": 0.0}},
	)
	w := NewWorld(lvl, 1)
	p := mustPlayer(t, w)
	assert.Equal(t, 1, components.Health.Get(p).Current)
	assert.Equal(t, 1, components.Health.Get(p).Max)

	boss, ok := w.Boss()
	require.True(t, ok)
	w.Step(components.InputSnapshot{}, testDT)
	assert.Equal(t, 1, components.Boss.Get(boss).Phase, "a full-health boss starts calm")
}

func TestLevelWithoutPlayerGetsFallback(t *testing.T) {
	w := NewWorld(testLevel([]leveldata.Tile{floorTile()}), 1)
	p := mustPlayer(t, w)
	obj := components.Object.Get(p)
	assert.Equal(t, cfg.Player.FallbackX, obj.X)
	assert.Equal(t, cfg.Player.FallbackY, obj.Y)
	assert.Equal(t, cfg.Player.FallbackSpeed, components.Physics.Get(p).MaxSpeed)
}

func TestDeterministicWithSeed(t *testing.T) {
	lvl := leveldata.Default()
	script, err := ParseScript("right:120,jump,right+shoot:60,left:90")
	require.NoError(t, err)

	trace := func() []float64 {
		w := NewWorld(lvl, 42)
		var xs []float64
		for tick := uint64(1); tick <= script.Len(); tick++ {
			w.Step(script.Next(tick), testDT)
			for _, e := range w.Level().Entities {
				xs = append(xs, components.Object.Get(e).X)
			}
		}
		return xs
	}
	assert.Equal(t, trace(), trace())
}
