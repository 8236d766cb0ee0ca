package component

// ObstacleComponent is a static axis-aligned wall block given by center and full size
type ObstacleComponent struct {
	X, Y          float64
	Width, Height float64
}
