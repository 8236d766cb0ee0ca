package vmath

import "math"

// NormalizeDeg wraps an angle in degrees into [0, 360)
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -0.0 and values that round up to 360 after the add
	if deg >= 360 || deg == 0 {
		return 0
	}
	return deg
}

// HeadingDeg returns atan2(dy, dx) in degrees, normalized into [0, 360)
func HeadingDeg(dx, dy float64) float64 {
	return NormalizeDeg(math.Atan2(dy, dx) * 180 / math.Pi)
}

// DirectionFromDeg returns the unit facing vector for an angle in degrees
func DirectionFromDeg(deg float64) (cos, sin float64) {
	rad := deg * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}
