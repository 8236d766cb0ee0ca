package parameter

// Monsters
const (
	// MonsterCount is the number of monsters generated per session
	MonsterCount = 3

	// MonsterMinWaypoints and MonsterMaxWaypoints bound patrol route length, inclusive
	MonsterMinWaypoints = 3
	MonsterMaxWaypoints = 6

	// MonsterMinSpeed and MonsterMaxSpeed bound the per-monster speed in arena units per tick
	MonsterMinSpeed = 0.3
	MonsterMaxSpeed = 1.0

	// MonsterWaypointReach is the distance under which the next waypoint becomes the target
	MonsterWaypointReach = 10.0

	// MonsterDetectionRadius is the distance under which a visible player is chased
	MonsterDetectionRadius = 200.0

	// MonsterChaseSpeedFactor scales speed while chasing
	MonsterChaseSpeedFactor = 1.5

	// MonsterContactReach is added to the player radius for the damage distance
	MonsterContactReach = 25.0

	// MonsterContactDamage is health lost per touching monster per tick
	MonsterContactDamage = 1
)
