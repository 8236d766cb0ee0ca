package parameter

import "time"

// Speed Boost
const (
	// BoostDuration is how long one activation lasts
	BoostDuration = 3 * time.Second

	// BoostCooldown is the minimum time between activations, measured from the previous activation
	BoostCooldown = 9 * time.Second

	// BoostSpeedFactor scales movement while active, composes with StealthSpeedFactor
	BoostSpeedFactor = 2.0
)
