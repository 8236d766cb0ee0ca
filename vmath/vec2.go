package vmath

import "math"

// Vec2 is a float64 arena-space point or displacement
type Vec2 struct {
	X, Y float64
}

// Distance returns the euclidean distance between two points
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// StepToward moves from (x, y) toward (tx, ty) by exactly step units
// Returns the origin unchanged with ok=false when the target coincides with it
func StepToward(x, y, tx, ty, step float64) (nx, ny float64, ok bool) {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return x, y, false
	}
	return x + dx/dist*step, y + dy/dist*step, true
}
