package engine

import (
	"time"

	"github.com/lixenwraith/dungeon-crawler/component"
	"github.com/lixenwraith/dungeon-crawler/event"
)

// MonsterView is the render-facing part of a monster
type MonsterView struct {
	X, Y  float64
	Angle float64
	Mode  component.MonsterMode
}

// BoostView is the HUD-facing part of the boost
type BoostView struct {
	Active            bool
	Remaining         time.Duration
	RemainingCooldown time.Duration
	Duration          time.Duration
}

// Snapshot is a deep copy of everything the presentation layer may read
// Holding one never aliases session memory
type Snapshot struct {
	SessionID  string
	Status     Status
	LossReason event.LossReason
	Tick       uint64
	Now        time.Time

	Elapsed   time.Duration
	Remaining time.Duration
	TimeLimit time.Duration

	HalfExtent      float64
	SpawnHalfExtent float64
	Obstacles       []component.ObstacleComponent

	Player    component.PlayerComponent
	Goal      int
	Treasures []component.TreasureComponent
	Monsters  []MonsterView
	Boost     BoostView
}

// Snapshot copies the current state without mutating it; lazy boost expiry is computed, not applied
func (s *Session) Snapshot() Snapshot {
	now := s.clock.Now()

	snap := Snapshot{
		SessionID:  s.id,
		Status:     s.status,
		LossReason: s.lossReason,
		Tick:       s.tick,
		Now:        now,

		Elapsed:   s.Elapsed(),
		Remaining: s.Remaining(),
		TimeLimit: s.cfg.TimeLimit,

		HalfExtent:      s.cfg.HalfExtent,
		SpawnHalfExtent: s.cfg.SpawnHalfExtent,
		Obstacles:       append([]component.ObstacleComponent(nil), s.arena.Obstacles...),

		Player:    s.player,
		Goal:      s.cfg.TreasureGoal,
		Treasures: append([]component.TreasureComponent(nil), s.treasures...),
		Monsters:  make([]MonsterView, len(s.monsters)),

		Boost: BoostView{
			Active:            s.boostSys.ActiveAt(now),
			Remaining:         s.boostSys.Remaining(now),
			RemainingCooldown: s.boostSys.RemainingCooldown(now),
			Duration:          s.cfg.BoostDuration,
		},
	}

	for i, m := range s.monsters {
		snap.Monsters[i] = MonsterView{X: m.X, Y: m.Y, Angle: m.Angle, Mode: m.Mode}
	}
	return snap
}
