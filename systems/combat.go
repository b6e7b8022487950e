package systems

import (
	"github.com/automoto/adventure/components"
	"github.com/yohamta/donburi"
)

// Hurt applies damage unless the target still has invulnerability frames.
// Knockback is added to the current velocity. Reports whether it landed.
func Hurt(e *donburi.Entry, ev components.DamageEventData) bool {
	health := components.Health.Get(e)
	if health.IFrames > 0 {
		return false
	}

	applyDamage(e, health, ev.Amount)
	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		physics.SpeedX += ev.KnockbackX
		physics.SpeedY += ev.KnockbackY
	}
	health.IFrames = health.IFrameDuration
	return true
}

// TakeDamage applies contact damage gated by the damage cooldown measured
// against the last accepted hit. Knockback replaces the current velocity.
func TakeDamage(e *donburi.Entry, ev components.DamageEventData, now float64) bool {
	health := components.Health.Get(e)
	if now-health.LastDamageAt < health.DamageCooldown {
		return false
	}

	applyDamage(e, health, ev.Amount)
	health.LastDamageAt = now
	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		physics.SpeedX = ev.KnockbackX
		physics.SpeedY = ev.KnockbackY
	}
	return true
}

// Heal restores health up to the maximum.
func Heal(e *donburi.Entry, amount int) {
	health := components.Health.Get(e)
	health.Current = min(health.Max, health.Current+amount)
}

func applyDamage(e *donburi.Entry, health *components.HealthData, amount int) {
	health.Current = max(0, min(health.Max, health.Current-amount))
	if health.Current == 0 {
		components.Object.Get(e).RequestRemoval()
	}
}
