package input

// Intent is a semantic player request decoupled from the key that produced it
type Intent uint8

const (
	IntentNone Intent = iota

	// Session
	IntentStart   // Space on the start screen
	IntentRestart // R after game over
	IntentQuit    // Esc, Ctrl+C

	// Movement, relative to facing
	IntentMoveForward
	IntentMoveBack
	IntentStrafeLeft
	IntentStrafeRight
	IntentTurnLeft
	IntentTurnRight

	// Abilities
	IntentToggleStealth
	IntentActivateBoost

	// Presentation only, never reach the session
	IntentToggleView
	IntentToggleMinimap
	IntentCameraCloser
	IntentCameraFarther
	IntentToggleStats
	IntentToggleMute
)

var intentNames = [...]string{
	IntentNone:          "none",
	IntentStart:         "start",
	IntentRestart:       "restart",
	IntentQuit:          "quit",
	IntentMoveForward:   "move_forward",
	IntentMoveBack:      "move_back",
	IntentStrafeLeft:    "strafe_left",
	IntentStrafeRight:   "strafe_right",
	IntentTurnLeft:      "turn_left",
	IntentTurnRight:     "turn_right",
	IntentToggleStealth: "toggle_stealth",
	IntentActivateBoost: "activate_boost",
	IntentToggleView:    "toggle_view",
	IntentToggleMinimap: "toggle_minimap",
	IntentCameraCloser:  "camera_closer",
	IntentCameraFarther: "camera_farther",
	IntentToggleStats:   "toggle_stats",
	IntentToggleMute:    "toggle_mute",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Gameplay reports whether the intent is handled by the session rather than the front end
func (i Intent) Gameplay() bool {
	return i >= IntentStart && i <= IntentActivateBoost && i != IntentQuit
}

// Movement reports whether the intent translates the player
func (i Intent) Movement() bool {
	return i >= IntentMoveForward && i <= IntentStrafeRight
}
