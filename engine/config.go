package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/dungeon-crawler/maze"
	"github.com/lixenwraith/dungeon-crawler/parameter"
)

// Config is the tunable rule set of a session
// Field tags match the `simulation` section of the YAML config file
type Config struct {
	HalfExtent      float64 `yaml:"half_extent"`
	SpawnHalfExtent float64 `yaml:"spawn_half_extent"`
	PlacementMargin float64 `yaml:"placement_margin"`

	Obstacles       int `yaml:"obstacles"`
	ObstacleMinSize int `yaml:"obstacle_min_size"`
	ObstacleMaxSize int `yaml:"obstacle_max_size"`

	Treasures            int `yaml:"treasures"`
	TreasureGoal         int `yaml:"treasure_goal"`
	MaxPlacementAttempts int `yaml:"max_placement_attempts"`

	Monsters int `yaml:"monsters"`

	PlayerRadius float64 `yaml:"player_radius"`
	PlayerSpeed  float64 `yaml:"player_speed"`
	PlayerHealth int     `yaml:"player_health"`
	TurnStep     float64 `yaml:"turn_step"`

	TimeLimit     time.Duration `yaml:"time_limit"`
	BoostDuration time.Duration `yaml:"boost_duration"`
	BoostCooldown time.Duration `yaml:"boost_cooldown"`

	// Seed fixes arena generation (0 = time based)
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the stock rules
func DefaultConfig() Config {
	return Config{
		HalfExtent:           parameter.ArenaHalfExtent,
		SpawnHalfExtent:      parameter.SpawnZoneHalfExtent,
		PlacementMargin:      parameter.PlacementMargin,
		Obstacles:            parameter.ObstacleCount,
		ObstacleMinSize:      parameter.ObstacleMinSize,
		ObstacleMaxSize:      parameter.ObstacleMaxSize,
		Treasures:            parameter.TreasureCount,
		TreasureGoal:         parameter.TreasureGoal,
		MaxPlacementAttempts: parameter.TreasurePlacementMaxAttempts,
		Monsters:             parameter.MonsterCount,
		PlayerRadius:         parameter.PlayerRadius,
		PlayerSpeed:          parameter.PlayerBaseSpeed,
		PlayerHealth:         parameter.PlayerMaxHealth,
		TurnStep:             parameter.PlayerTurnStep,
		TimeLimit:            parameter.SessionTimeLimit,
		BoostDuration:        parameter.BoostDuration,
		BoostCooldown:        parameter.BoostCooldown,
	}
}

// Validate rejects rule sets the per-tick math cannot handle
func (c Config) Validate() error {
	switch {
	case c.HalfExtent <= 0:
		return invalid("half_extent must be positive, got %v", c.HalfExtent)
	case c.SpawnHalfExtent < 0:
		return invalid("spawn_half_extent must not be negative, got %v", c.SpawnHalfExtent)
	case c.PlacementMargin < 0:
		return invalid("placement_margin must not be negative, got %v", c.PlacementMargin)
	case c.HalfExtent-c.PlacementMargin <= c.SpawnHalfExtent:
		return invalid("placement area (half_extent - placement_margin = %v) must exceed spawn_half_extent %v",
			c.HalfExtent-c.PlacementMargin, c.SpawnHalfExtent)
	case c.Obstacles < 0:
		return invalid("obstacles must not be negative, got %d", c.Obstacles)
	case c.ObstacleMinSize <= 0 || c.ObstacleMaxSize < c.ObstacleMinSize:
		return invalid("obstacle size range [%d, %d] is empty or non-positive", c.ObstacleMinSize, c.ObstacleMaxSize)
	case float64(c.ObstacleMaxSize) > 2*c.HalfExtent:
		return invalid("obstacle_max_size %d exceeds arena side %v", c.ObstacleMaxSize, 2*c.HalfExtent)
	case c.Treasures < 0:
		return invalid("treasures must not be negative, got %d", c.Treasures)
	case c.TreasureGoal < 1 || c.TreasureGoal > c.Treasures:
		return invalid("treasure_goal must be within [1, treasures=%d], got %d", c.Treasures, c.TreasureGoal)
	case c.MaxPlacementAttempts <= 0:
		return invalid("max_placement_attempts must be positive, got %d", c.MaxPlacementAttempts)
	case c.Monsters < 0:
		return invalid("monsters must not be negative, got %d", c.Monsters)
	case c.PlayerRadius < 0:
		return invalid("player_radius must not be negative, got %v", c.PlayerRadius)
	case c.PlayerRadius >= c.SpawnHalfExtent && c.SpawnHalfExtent > 0:
		return invalid("player_radius %v does not fit the spawn zone %v", c.PlayerRadius, c.SpawnHalfExtent)
	case c.PlayerSpeed <= 0:
		return invalid("player_speed must be positive, got %v", c.PlayerSpeed)
	case c.PlayerHealth <= 0:
		return invalid("player_health must be positive, got %d", c.PlayerHealth)
	case c.TimeLimit <= 0:
		return invalid("time_limit must be positive, got %v", c.TimeLimit)
	case c.BoostDuration < 0 || c.BoostCooldown < 0:
		return invalid("boost timings must not be negative, got duration %v cooldown %v", c.BoostDuration, c.BoostCooldown)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfiguration}, args...)...)
}

// mazeConfig projects the arena part of the rules onto the generator
func (c Config) mazeConfig() maze.Config {
	mc := maze.DefaultConfig()
	mc.HalfExtent = c.HalfExtent
	mc.SpawnHalf = c.SpawnHalfExtent
	mc.Margin = c.PlacementMargin
	mc.Obstacles = c.Obstacles
	mc.ObstacleMin = c.ObstacleMinSize
	mc.ObstacleMax = c.ObstacleMaxSize
	mc.Treasures = c.Treasures
	mc.MaxAttempts = c.MaxPlacementAttempts
	mc.Monsters = c.Monsters
	mc.Seed = c.Seed
	return mc
}
