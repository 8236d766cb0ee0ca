package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundPickup  SoundType = iota // Treasure collected
	SoundHit                      // Monster contact
	SoundBoost                    // Speed boost engaged
	SoundSpotted                  // Monster switched to chase
	SoundWin                      // All treasures collected
	SoundLose                     // Health or time ran out
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundPickup:  "pickup",
	SoundHit:     "hit",
	SoundBoost:   "boost",
	SoundSpotted: "spotted",
	SoundWin:     "win",
	SoundLose:    "lose",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}
