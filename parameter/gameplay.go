package parameter

import "time"

// Arena
const (
	// ArenaHalfExtent is the half side of the square arena, bounds are [-600, 600] on both axes
	ArenaHalfExtent = 600.0

	// SpawnZoneHalfExtent keeps |x| < 100 and |y| < 100 clear of obstacles and treasures
	SpawnZoneHalfExtent = 100.0

	// PlacementMargin shrinks the treasure and waypoint sampling bound away from the walls
	PlacementMargin = 50.0

	// ObstacleCount is the number of obstacle placement attempts per arena
	ObstacleCount = 15

	// ObstacleMinSize and ObstacleMaxSize bound each obstacle side, inclusive
	ObstacleMinSize = 50
	ObstacleMaxSize = 200

	// WallHeight is the rendered obstacle height, presentation only
	WallHeight = 100.0
)

// Session Rules
const (
	// SessionTimeLimit is the wall-clock budget for one run
	SessionTimeLimit = 120 * time.Second

	// TreasureCount is the number of treasures generated per session
	TreasureCount = 5

	// TreasureGoal is the number of pickups that wins the session
	TreasureGoal = 5

	// TreasurePickupReach is added to the player radius for the pickup distance
	TreasurePickupReach = 20.0

	// TreasurePlacementMaxAttempts caps resampling per treasure before generation fails
	TreasurePlacementMaxAttempts = 10000
)
