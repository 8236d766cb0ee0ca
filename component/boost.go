package component

import (
	"time"
)

// BoostComponent tracks the speed boost ability
// Timestamps come from the session clock so expiry is evaluated lazily on every query
type BoostComponent struct {
	Active         bool
	ActivatedAt    time.Time
	LastActivation time.Time
	Duration       time.Duration
	Cooldown       time.Duration
}
