package gamemath

import "math"

// ApplyDrag damps speed proportionally: v - v*drag*dt.
func ApplyDrag(speed, drag, dt float64) float64 {
	return speed - speed*drag*dt
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// FanVelocity returns the velocity of one projectile in an angled spread.
// dir is the horizontal direction (-1 or 1) and the vertical speed is
// tan(angle) * |vx|.
func FanVelocity(angle, speed, dir float64) (vx, vy float64) {
	vx = speed * dir
	vy = math.Tan(angle) * math.Abs(vx)
	return vx, vy
}
