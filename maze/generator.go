package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/dungeon-crawler/component"
	"github.com/lixenwraith/dungeon-crawler/parameter"
	"github.com/lixenwraith/dungeon-crawler/vmath"
)

// ErrGenerationFailed is returned when placement exhausts its attempt budget
var ErrGenerationFailed = errors.New("arena generation failed")

// Arena is the static obstacle layout of one session
type Arena struct {
	HalfExtent float64
	Obstacles  []component.ObstacleComponent
}

// Blocked reports whether a circle at (x, y) leaves the bounds or overlaps any obstacle
func (a *Arena) Blocked(x, y, r float64) bool {
	if vmath.OutOfBounds(x, y, r, a.HalfExtent) {
		return true
	}
	for _, o := range a.Obstacles {
		if vmath.CircleIntersectsRect(x, y, r, o.X, o.Y, o.Width, o.Height) {
			return true
		}
	}
	return false
}

type Config struct {
	HalfExtent float64
	SpawnHalf  float64
	Margin     float64

	Obstacles                int
	ObstacleMin, ObstacleMax int

	Treasures   int
	MaxAttempts int // Per treasure (0 = parameter default)

	Monsters                   int
	MinWaypoints, MaxWaypoints int
	MinSpeed, MaxSpeed         float64

	Seed int64 // Optional (0 = Random)
}

// DefaultConfig returns the stock arena dimensions and entity counts
func DefaultConfig() Config {
	return Config{
		HalfExtent:   parameter.ArenaHalfExtent,
		SpawnHalf:    parameter.SpawnZoneHalfExtent,
		Margin:       parameter.PlacementMargin,
		Obstacles:    parameter.ObstacleCount,
		ObstacleMin:  parameter.ObstacleMinSize,
		ObstacleMax:  parameter.ObstacleMaxSize,
		Treasures:    parameter.TreasureCount,
		MaxAttempts:  parameter.TreasurePlacementMaxAttempts,
		Monsters:     parameter.MonsterCount,
		MinWaypoints: parameter.MonsterMinWaypoints,
		MaxWaypoints: parameter.MonsterMaxWaypoints,
		MinSpeed:     parameter.MonsterMinSpeed,
		MaxSpeed:     parameter.MonsterMaxSpeed,
	}
}

type Result struct {
	Arena     Arena
	Treasures []component.TreasureComponent
	Monsters  []component.MonsterComponent
}

// Generate builds a full session layout: obstacles, then treasures clear of them, then patrols
func Generate(cfg Config) (Result, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return GenerateWith(cfg, rand.New(rand.NewSource(seed)))
}

// GenerateWith is Generate with a caller-owned random source
func GenerateWith(cfg Config, rng *rand.Rand) (Result, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = parameter.TreasurePlacementMaxAttempts
	}

	obstacles := GenerateObstacles(rng, cfg)
	arena := Arena{HalfExtent: cfg.HalfExtent, Obstacles: obstacles}

	treasures, err := PlaceTreasures(rng, cfg, obstacles)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Arena:     arena,
		Treasures: treasures,
		Monsters:  PlaceMonsterPatrols(rng, cfg),
	}, nil
}

// --- Placement ---

// GenerateObstacles samples cfg.Obstacles candidates and keeps those whose center is outside the
// spawn zone. Rejected candidates are not resampled, so fewer obstacles than requested is normal
func GenerateObstacles(rng *rand.Rand, cfg Config) []component.ObstacleComponent {
	half := int(cfg.HalfExtent)
	obstacles := make([]component.ObstacleComponent, 0, cfg.Obstacles)

	for range cfg.Obstacles {
		w := randRange(rng, cfg.ObstacleMin, cfg.ObstacleMax)
		h := randRange(rng, cfg.ObstacleMin, cfg.ObstacleMax)
		x := randRange(rng, -half+w/2, half-w/2)
		y := randRange(rng, -half+h/2, half-h/2)

		if vmath.InSpawnZone(float64(x), float64(y), cfg.SpawnHalf) {
			continue
		}

		obstacles = append(obstacles, component.ObstacleComponent{
			X: float64(x), Y: float64(y),
			Width: float64(w), Height: float64(h),
		})
	}
	return obstacles
}

// PlaceTreasures resamples each treasure until it is outside the spawn zone and every obstacle
// Each treasure gets cfg.MaxAttempts samples before ErrGenerationFailed
func PlaceTreasures(rng *rand.Rand, cfg Config, obstacles []component.ObstacleComponent) ([]component.TreasureComponent, error) {
	lo, hi, err := placementBound(cfg)
	if err != nil {
		return nil, err
	}

	treasures := make([]component.TreasureComponent, 0, cfg.Treasures)
	for i := range cfg.Treasures {
		placed := false
		for range cfg.MaxAttempts {
			x := float64(randRange(rng, lo, hi))
			y := float64(randRange(rng, lo, hi))
			if !validTreasurePosition(x, y, cfg.SpawnHalf, obstacles) {
				continue
			}
			treasures = append(treasures, component.TreasureComponent{X: x, Y: y})
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf("%w: treasure %d not placed after %d attempts", ErrGenerationFailed, i, cfg.MaxAttempts)
		}
	}
	return treasures, nil
}

// PlaceMonsterPatrols creates monsters standing on the first waypoint of a random cyclic route
func PlaceMonsterPatrols(rng *rand.Rand, cfg Config) []component.MonsterComponent {
	lo, hi, err := placementBound(cfg)
	if err != nil {
		return nil
	}

	monsters := make([]component.MonsterComponent, 0, cfg.Monsters)
	for range cfg.Monsters {
		count := randRange(rng, cfg.MinWaypoints, cfg.MaxWaypoints)
		waypoints := make([]vmath.Vec2, count)
		for j := range waypoints {
			waypoints[j] = vmath.Vec2{
				X: float64(randRange(rng, lo, hi)),
				Y: float64(randRange(rng, lo, hi)),
			}
		}

		monsters = append(monsters, component.MonsterComponent{
			X:         waypoints[0].X,
			Y:         waypoints[0].Y,
			Speed:     cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed),
			Waypoints: waypoints,
		})
	}
	return monsters
}

// --- Helpers ---

func validTreasurePosition(x, y, spawnHalf float64, obstacles []component.ObstacleComponent) bool {
	if vmath.InSpawnZone(x, y, spawnHalf) {
		return false
	}
	for _, o := range obstacles {
		if vmath.PointInRect(x, y, o.X, o.Y, o.Width, o.Height) {
			return false
		}
	}
	return true
}

func placementBound(cfg Config) (lo, hi int, err error) {
	hi = int(cfg.HalfExtent - cfg.Margin)
	if hi <= 0 {
		return 0, 0, fmt.Errorf("%w: margin %.0f leaves no room in half extent %.0f", ErrGenerationFailed, cfg.Margin, cfg.HalfExtent)
	}
	return -hi, hi, nil
}

// randRange returns an int in [lo, hi], both inclusive
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
