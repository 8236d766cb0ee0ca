package component

import "github.com/lixenwraith/dungeon-crawler/vmath"

// MonsterMode is the behavior chosen for the current tick
type MonsterMode uint8

const (
	MonsterPatrol MonsterMode = iota
	MonsterChase
)

func (m MonsterMode) String() string {
	switch m {
	case MonsterChase:
		return "chase"
	default:
		return "patrol"
	}
}

// MonsterComponent holds one monster and its cyclic patrol route
// Target always indexes Waypoints; Mode is reported for rendering only and recomputed every tick
type MonsterComponent struct {
	X, Y      float64
	Angle     float64
	Speed     float64
	Waypoints []vmath.Vec2
	Target    int
	Mode      MonsterMode
}
