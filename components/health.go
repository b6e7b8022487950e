package components

import "github.com/yohamta/donburi"

// HealthData tracks hit points and the two damage gates: invulnerability
// frames for hurt() and the contact cooldown for TakeDamage().
type HealthData struct {
	Current int
	Max     int

	IFrames        float64 // Seconds of invulnerability left
	IFrameDuration float64 // Granted after each hurt; 0 disables
	DamageCooldown float64
	LastDamageAt   float64
}

// Ratio returns Current/Max, or 0 for a zero max.
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

var Health = donburi.NewComponentType[HealthData]()

// DamageEventData describes one hit.
type DamageEventData struct {
	Amount     int
	KnockbackX float64
	KnockbackY float64
}
