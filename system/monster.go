package system

import (
	"github.com/lixenwraith/dungeon-crawler/component"
	"github.com/lixenwraith/dungeon-crawler/parameter"
	"github.com/lixenwraith/dungeon-crawler/vmath"
)

// Movement is the outcome of one monster decision
type Movement struct {
	X, Y   float64
	Angle  float64
	Target int
	Mode   component.MonsterMode
}

// DecideMovement is the per-tick monster policy. It is memoryless: chase is chosen purely from the
// live distance to a visible player. Reaching the current waypoint advances the patrol index in
// either mode; chase only overrides the step and facing. Obstacles are ignored
func DecideMovement(m *component.MonsterComponent, playerX, playerY float64, stealth bool) Movement {
	mv := Movement{X: m.X, Y: m.Y, Angle: m.Angle, Target: m.Target, Mode: component.MonsterPatrol}

	if len(m.Waypoints) > 0 {
		wp := m.Waypoints[mv.Target]
		if vmath.Distance(m.X, m.Y, wp.X, wp.Y) < parameter.MonsterWaypointReach {
			mv.Target = (mv.Target + 1) % len(m.Waypoints)
		}
	}

	if !stealth && vmath.Distance(m.X, m.Y, playerX, playerY) < parameter.MonsterDetectionRadius {
		mv.Mode = component.MonsterChase
		step := m.Speed * parameter.MonsterChaseSpeedFactor
		if nx, ny, ok := vmath.StepToward(m.X, m.Y, playerX, playerY, step); ok {
			mv.Angle = vmath.HeadingDeg(playerX-m.X, playerY-m.Y)
			mv.X, mv.Y = nx, ny
		}
		return mv
	}

	if len(m.Waypoints) == 0 {
		return mv
	}

	wp := m.Waypoints[mv.Target]
	if nx, ny, ok := vmath.StepToward(m.X, m.Y, wp.X, wp.Y, m.Speed); ok {
		mv.Angle = vmath.HeadingDeg(nx-m.X, ny-m.Y)
		mv.X, mv.Y = nx, ny
	}
	return mv
}

// MonsterSystem advances every monster one tick
type MonsterSystem struct{}

func NewMonsterSystem() *MonsterSystem {
	return &MonsterSystem{}
}

// Update applies DecideMovement to each monster in place
func (s *MonsterSystem) Update(monsters []component.MonsterComponent, player *component.PlayerComponent) {
	for i := range monsters {
		m := &monsters[i]
		mv := DecideMovement(m, player.X, player.Y, player.Stealth)
		m.X, m.Y = mv.X, mv.Y
		m.Angle = mv.Angle
		m.Target = mv.Target
		m.Mode = mv.Mode
	}
}
