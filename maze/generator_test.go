package maze

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lixenwraith/dungeon-crawler/component"
	"github.com/lixenwraith/dungeon-crawler/vmath"
)

func TestGenerateObstaclesStayInBoundsAndOutOfSpawn(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		obstacles := GenerateObstacles(rng, cfg)

		if len(obstacles) > cfg.Obstacles {
			t.Fatalf("seed %d: %d obstacles, want at most %d", seed, len(obstacles), cfg.Obstacles)
		}
		for i, o := range obstacles {
			if vmath.InSpawnZone(o.X, o.Y, cfg.SpawnHalf) {
				t.Errorf("seed %d: obstacle %d center (%v,%v) in spawn zone", seed, i, o.X, o.Y)
			}
			if o.Width < float64(cfg.ObstacleMin) || o.Width > float64(cfg.ObstacleMax) ||
				o.Height < float64(cfg.ObstacleMin) || o.Height > float64(cfg.ObstacleMax) {
				t.Errorf("seed %d: obstacle %d size %vx%v out of range", seed, i, o.Width, o.Height)
			}
			if o.X-o.Width/2 < -cfg.HalfExtent-1 || o.X+o.Width/2 > cfg.HalfExtent+1 ||
				o.Y-o.Height/2 < -cfg.HalfExtent-1 || o.Y+o.Height/2 > cfg.HalfExtent+1 {
				t.Errorf("seed %d: obstacle %d exceeds arena: %+v", seed, i, o)
			}
		}
	}
}

func TestGenerateObstaclesDropsSpawnZoneCandidates(t *testing.T) {
	// A tiny arena forces every center into the spawn zone, nothing is retried
	cfg := DefaultConfig()
	cfg.HalfExtent = 120
	cfg.ObstacleMin, cfg.ObstacleMax = 200, 200

	obstacles := GenerateObstacles(rand.New(rand.NewSource(7)), cfg)
	if len(obstacles) != 0 {
		t.Fatalf("got %d obstacles, want 0 when every candidate lands in spawn zone", len(obstacles))
	}
}

func TestPlaceTreasuresAvoidObstaclesAndSpawn(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(1); seed <= 50; seed++ {
		res, err := Generate(Config{
			HalfExtent: cfg.HalfExtent, SpawnHalf: cfg.SpawnHalf, Margin: cfg.Margin,
			Obstacles: cfg.Obstacles, ObstacleMin: cfg.ObstacleMin, ObstacleMax: cfg.ObstacleMax,
			Treasures: cfg.Treasures, Monsters: cfg.Monsters,
			MinWaypoints: cfg.MinWaypoints, MaxWaypoints: cfg.MaxWaypoints,
			MinSpeed: cfg.MinSpeed, MaxSpeed: cfg.MaxSpeed,
			Seed: seed,
		})
		if err != nil {
			t.Fatalf("seed %d: Generate: %v", seed, err)
		}
		if len(res.Treasures) != cfg.Treasures {
			t.Fatalf("seed %d: %d treasures, want %d", seed, len(res.Treasures), cfg.Treasures)
		}

		limit := cfg.HalfExtent - cfg.Margin
		for i, tr := range res.Treasures {
			if tr.Collected {
				t.Errorf("seed %d: treasure %d starts collected", seed, i)
			}
			if vmath.InSpawnZone(tr.X, tr.Y, cfg.SpawnHalf) {
				t.Errorf("seed %d: treasure %d in spawn zone", seed, i)
			}
			if tr.X < -limit || tr.X > limit || tr.Y < -limit || tr.Y > limit {
				t.Errorf("seed %d: treasure %d outside reduced bound: (%v,%v)", seed, i, tr.X, tr.Y)
			}
			for _, o := range res.Arena.Obstacles {
				if vmath.PointInRect(tr.X, tr.Y, o.X, o.Y, o.Width, o.Height) {
					t.Errorf("seed %d: treasure %d inside obstacle %+v", seed, i, o)
				}
			}
		}
	}
}

func TestPlaceTreasuresFailsWhenNoValidPosition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxAttempts = 50
	// One obstacle covering the entire sampling area
	cover := []component.ObstacleComponent{{X: 0, Y: 0, Width: 2000, Height: 2000}}

	_, err := PlaceTreasures(rand.New(rand.NewSource(1)), cfg, cover)
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestPlaceMonsterPatrols(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 20; round++ {
		monsters := PlaceMonsterPatrols(rng, cfg)
		if len(monsters) != cfg.Monsters {
			t.Fatalf("got %d monsters, want %d", len(monsters), cfg.Monsters)
		}
		for i, m := range monsters {
			if n := len(m.Waypoints); n < cfg.MinWaypoints || n > cfg.MaxWaypoints {
				t.Errorf("monster %d has %d waypoints", i, n)
			}
			if m.X != m.Waypoints[0].X || m.Y != m.Waypoints[0].Y {
				t.Errorf("monster %d starts at (%v,%v), want first waypoint %+v", i, m.X, m.Y, m.Waypoints[0])
			}
			if m.Speed < cfg.MinSpeed || m.Speed >= cfg.MaxSpeed {
				t.Errorf("monster %d speed %v outside [%v,%v)", i, m.Speed, cfg.MinSpeed, cfg.MaxSpeed)
			}
			if m.Target != 0 {
				t.Errorf("monster %d target = %d, want 0", i, m.Target)
			}
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99

	a, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Arena.Obstacles) != len(b.Arena.Obstacles) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(a.Arena.Obstacles), len(b.Arena.Obstacles))
	}
	for i := range a.Treasures {
		if a.Treasures[i] != b.Treasures[i] {
			t.Errorf("treasure %d differs: %+v vs %+v", i, a.Treasures[i], b.Treasures[i])
		}
	}
}

func TestArenaBlocked(t *testing.T) {
	a := Arena{
		HalfExtent: 600,
		Obstacles:  []component.ObstacleComponent{{X: 0, Y: 0, Width: 100, Height: 100}},
	}

	if !a.Blocked(40, 0, 15) {
		t.Error("(40,0) r15 should overlap the obstacle")
	}
	if a.Blocked(60+15, 0, 15) {
		t.Error("(75,0) r15 should be clear")
	}
	if !a.Blocked(590, 0, 15) {
		t.Error("(590,0) r15 should be out of bounds")
	}
}
