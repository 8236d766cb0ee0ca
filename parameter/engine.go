package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation tick interval
	// Monster speeds are expressed in arena units per tick, so this sets their real-world pace
	GameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize is the buffered capacity between the input poller and the main loop
	EventChannelSize = 256
)
