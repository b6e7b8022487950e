// Package gamemath holds the pure geometry and scalar helpers used by the
// simulation. It has no dependencies on ebitengine, donburi or resolv.
package gamemath

// AABB is an axis-aligned box with a top-left origin.
type AABB struct {
	X, Y, W, H float64
}

// NewAABB returns a box, clamping negative sizes to zero.
func NewAABB(x, y, w, h float64) AABB {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return AABB{X: x, Y: y, W: w, H: h}
}

func (a AABB) Left() float64    { return a.X }
func (a AABB) Right() float64   { return a.X + a.W }
func (a AABB) Top() float64     { return a.Y }
func (a AABB) Bottom() float64  { return a.Y + a.H }
func (a AABB) CenterX() float64 { return a.X + a.W/2 }
func (a AABB) CenterY() float64 { return a.Y + a.H/2 }

// Move returns the box translated by (dx, dy).
func (a AABB) Move(dx, dy float64) AABB {
	a.X += dx
	a.Y += dy
	return a
}

// Intersects reports whether the open intervals of both boxes overlap on
// both axes. Boxes that only share an edge do not intersect.
func (a AABB) Intersects(b AABB) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() &&
		a.Top() < b.Bottom() && a.Bottom() > b.Top()
}

// MinimumTranslation returns the single-axis correction that moves a out of
// b. The axis with the smaller penetration wins; equal depths resolve
// vertically. Non-intersecting boxes yield (0, 0).
func (a AABB) MinimumTranslation(b AABB) (dx, dy float64) {
	if !a.Intersects(b) {
		return 0, 0
	}

	pushRight := b.Right() - a.Left()
	pushLeft := a.Right() - b.Left()
	pushDown := b.Bottom() - a.Top()
	pushUp := a.Bottom() - b.Top()

	mx := pushRight
	if pushLeft < pushRight {
		mx = -pushLeft
	}
	my := pushDown
	if pushUp < pushDown {
		my = -pushUp
	}

	if abs(mx) < abs(my) {
		return mx, 0
	}
	return 0, my
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
