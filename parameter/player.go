package parameter

// Player
const (
	// PlayerRadius is the collision footprint radius
	PlayerRadius = 15.0

	// PlayerElevation is the fixed z coordinate of the player
	PlayerElevation = 20.0

	// PlayerMaxHealth is the starting and maximum health
	PlayerMaxHealth = 100

	// PlayerBaseSpeed is the distance covered by one movement intent
	PlayerBaseSpeed = 10.0

	// PlayerTurnStep is the facing change in degrees per turn intent
	PlayerTurnStep = 5.0

	// StealthSpeedFactor scales movement while stealthed
	StealthSpeedFactor = 0.5
)
