package vmath

// CircleIntersectsRect reports whether a circle overlaps an axis-aligned rectangle
// Rectangle is given by center and full size; the test is the expanded (Minkowski) rectangle with
// strict inequalities, so a circle exactly touching an edge does not intersect
func CircleIntersectsRect(cx, cy, r, rx, ry, w, h float64) bool {
	halfW, halfH := w/2, h/2
	return cx+r > rx-halfW && cx-r < rx+halfW &&
		cy+r > ry-halfH && cy-r < ry+halfH
}

// OutOfBounds reports whether a circle extends past [-half, half] on either axis
func OutOfBounds(cx, cy, r, half float64) bool {
	return cx-r < -half || cx+r > half || cy-r < -half || cy+r > half
}

// PointInRect reports whether a point lies inside or on the edge of an axis-aligned rectangle
func PointInRect(px, py, rx, ry, w, h float64) bool {
	halfW, halfH := w/2, h/2
	return rx-halfW <= px && px <= rx+halfW &&
		ry-halfH <= py && py <= ry+halfH
}

// InSpawnZone reports whether a point is inside the open square |x| < half, |y| < half
func InSpawnZone(x, y, half float64) bool {
	return x > -half && x < half && y > -half && y < half
}
