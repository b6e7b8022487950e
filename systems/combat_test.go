package systems

import (
	"testing"

	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/automoto/adventure/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestPlayer() *donburi.Entry {
	e := ecs.NewECS(donburi.NewWorld())
	return factory.CreatePlayer(e, 0, 0, leveldata.Args{})
}

func TestHurtRespectsIFrames(t *testing.T) {
	p := newTestPlayer()
	health := components.Health.Get(p)

	assert.True(t, Hurt(p, components.DamageEventData{Amount: 10, KnockbackY: -100}))
	assert.Equal(t, 90, health.Current)
	assert.Equal(t, cfg.Player.InvulnSeconds, health.IFrames)
	assert.Equal(t, -100.0, components.Physics.Get(p).SpeedY)

	assert.False(t, Hurt(p, components.DamageEventData{Amount: 10}))
	assert.Equal(t, 90, health.Current)

	health.IFrames = 0
	assert.True(t, Hurt(p, components.DamageEventData{Amount: 10, KnockbackY: -100}))
	assert.Equal(t, 80, health.Current)
	assert.Equal(t, -200.0, components.Physics.Get(p).SpeedY, "knockback accumulates")
}

func TestTakeDamageCooldown(t *testing.T) {
	p := newTestPlayer()
	health := components.Health.Get(p)
	physics := components.Physics.Get(p)
	physics.SpeedX = 500

	tests := []struct {
		now    float64
		landed bool
		want   int
	}{
		{now: 0, landed: true, want: 90},
		{now: 0.5, landed: false, want: 90},
		{now: 0.99, landed: false, want: 90},
		{now: 1.0, landed: true, want: 80},
		{now: 2.5, landed: true, want: 70},
	}
	for _, tt := range tests {
		got := TakeDamage(p, components.DamageEventData{Amount: 10, KnockbackX: -300, KnockbackY: -200}, tt.now)
		assert.Equal(t, tt.landed, got, "now=%v", tt.now)
		assert.Equal(t, tt.want, health.Current, "now=%v", tt.now)
	}
	assert.Equal(t, -300.0, physics.SpeedX, "knockback replaces velocity")
	assert.Equal(t, -200.0, physics.SpeedY)
}

func TestHealthStaysInBounds(t *testing.T) {
	p := newTestPlayer()
	health := components.Health.Get(p)
	obj := components.Object.Get(p)

	Heal(p, 500)
	assert.Equal(t, health.Max, health.Current)

	assert.True(t, Hurt(p, components.DamageEventData{Amount: 1000}))
	assert.Zero(t, health.Current)
	assert.True(t, obj.RemoveRequested)
}
