package parameter

import "time"

// Audio Hardware Settings
const (
	// AudioSampleRate is the speaker rate used by every generator
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue lengths
const (
	PickupCueDuration = 180 * time.Millisecond
	HitCueDuration    = 60 * time.Millisecond
	BoostCueDuration  = 400 * time.Millisecond
	EndCueDuration    = 900 * time.Millisecond

	// MinHitCueGap throttles the damage buzz, contact damage fires every tick
	MinHitCueGap = 250 * time.Millisecond
)
