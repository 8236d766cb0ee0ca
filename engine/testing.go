package engine

import (
	"github.com/lixenwraith/dungeon-crawler/component"
	"github.com/lixenwraith/dungeon-crawler/maze"
)

// Layout replaces the generated entities of a running session
// Intended for deterministic scenarios in tests and tools; the player keeps its health and flags
type Layout struct {
	Obstacles []component.ObstacleComponent
	Treasures []component.TreasureComponent
	Monsters  []component.MonsterComponent
	PlayerX   float64
	PlayerY   float64
	Angle     float64
}

// ApplyLayout installs l, overriding the arena and entities created by Start
func (s *Session) ApplyLayout(l Layout) {
	s.arena = maze.Arena{HalfExtent: s.cfg.HalfExtent, Obstacles: l.Obstacles}
	s.treasures = l.Treasures
	s.monsters = l.Monsters
	s.player.X, s.player.Y = l.PlayerX, l.PlayerY
	s.player.Angle = l.Angle
	s.publish(s.clock.Now())
}
