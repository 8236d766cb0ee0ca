package component

// PlayerComponent is the single player record owned by the session
type PlayerComponent struct {
	X, Y, Z float64
	// Angle is the facing in degrees, [0, 360)
	Angle     float64
	Radius    float64
	Health    int
	Stealth   bool
	Treasures int
}
