package engine

import (
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/dungeon-crawler/component"
	"github.com/lixenwraith/dungeon-crawler/event"
	"github.com/lixenwraith/dungeon-crawler/maze"
	"github.com/lixenwraith/dungeon-crawler/parameter"
	"github.com/lixenwraith/dungeon-crawler/status"
	"github.com/lixenwraith/dungeon-crawler/system"
	"github.com/lixenwraith/dungeon-crawler/vmath"
)

// Session is the single owner of all simulation state: arena, entities, boost and status.
// It is not safe for concurrent use; ClockScheduler provides the mutation boundary when ticks run
// on their own goroutine
type Session struct {
	id    string
	cfg   Config
	clock TimeProvider
	rng   *rand.Rand

	status     Status
	lossReason event.LossReason
	startedAt  time.Time
	endedAt    time.Time
	tick       uint64

	arena     maze.Arena
	player    component.PlayerComponent
	treasures []component.TreasureComponent
	monsters  []component.MonsterComponent
	boost     component.BoostComponent

	boostSys   *system.BoostSystem
	monsterSys *system.MonsterSystem
	events     *event.EventQueue

	// Cached metric pointers
	statusReg     *status.Registry
	statStatus    *status.AtomicString
	statID        *status.AtomicString
	statTicks     *atomic.Int64
	statHealth    *atomic.Int64
	statTreasures *atomic.Int64
	statChasing   *atomic.Int64
	statStealth   *atomic.Bool
	statBoost     *atomic.Bool
	statRemaining *status.AtomicFloat
	statPlayerX   *status.AtomicFloat
	statPlayerY   *status.AtomicFloat
}

// NewSession validates cfg and returns a session waiting for Start
// reg may be nil when nobody reads the metrics
func NewSession(cfg Config, clock TimeProvider, reg *status.Registry) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		return nil, fmt.Errorf("%w: nil time provider", ErrInvalidConfiguration)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:        cfg,
		clock:      clock,
		rng:        rand.New(rand.NewSource(seed)),
		status:     StatusNotStarted,
		monsterSys: system.NewMonsterSystem(),
		events:     event.NewEventQueue(),

		statusReg:     reg,
		statStatus:    reg.Strings.Get("session.status"),
		statID:        reg.Strings.Get("session.id"),
		statTicks:     reg.Ints.Get("session.ticks"),
		statHealth:    reg.Ints.Get("player.health"),
		statTreasures: reg.Ints.Get("player.treasures"),
		statChasing:   reg.Ints.Get("monsters.chasing"),
		statStealth:   reg.Bools.Get("player.stealth"),
		statBoost:     reg.Bools.Get("boost.active"),
		statRemaining: reg.Floats.Get("session.remaining_sec"),
		statPlayerX:   reg.Floats.Get("player.x"),
		statPlayerY:   reg.Floats.Get("player.y"),
	}
	s.boostSys = system.NewBoostSystem(&s.boost)
	s.publish(clock.Now())
	return s, nil
}

// ===== TRANSITIONS =====

// Start moves NotStarted -> Running with a freshly generated arena
// Returns false without error when the session is not in NotStarted
func (s *Session) Start() (bool, error) {
	if s.status != StatusNotStarted {
		return false, nil
	}
	if err := s.begin(); err != nil {
		return false, err
	}
	return true, nil
}

// Restart discards a finished session and immediately starts a new one
// Ignored while Running or NotStarted. On generation failure the session is left in NotStarted
func (s *Session) Restart() (bool, error) {
	if !s.status.Finished() {
		return false, nil
	}
	s.status = StatusNotStarted
	if err := s.begin(); err != nil {
		s.publish(s.clock.Now())
		return false, err
	}
	return true, nil
}

// begin regenerates every entity and enters Running
func (s *Session) begin() error {
	layout, err := maze.GenerateWith(s.cfg.mazeConfig(), s.rng)
	if err != nil {
		log.Printf("[session] generation failed: %v", err)
		return fmt.Errorf("start session: %w", err)
	}

	now := s.clock.Now()
	s.id = uuid.NewString()
	s.arena = layout.Arena
	s.treasures = layout.Treasures
	s.monsters = layout.Monsters
	s.player = component.PlayerComponent{
		Z:      parameter.PlayerElevation,
		Radius: s.cfg.PlayerRadius,
		Health: s.cfg.PlayerHealth,
	}
	s.boost = system.NewBoostComponent(now, s.cfg.BoostDuration, s.cfg.BoostCooldown)
	s.events.Reset()

	s.status = StatusRunning
	s.lossReason = event.LossNone
	s.startedAt = now
	s.endedAt = time.Time{}
	s.tick = 0

	log.Printf("[session %s] started: %d obstacles, %d treasures, %d monsters",
		s.id, len(s.arena.Obstacles), len(s.treasures), len(s.monsters))
	s.emit(now, event.GameEvent{Type: event.EventSessionStarted})
	s.publish(now)
	return nil
}

func (s *Session) win(now time.Time) {
	s.status = StatusWon
	s.endedAt = now
	log.Printf("[session %s] won after %v", s.id, now.Sub(s.startedAt).Round(time.Millisecond))
	s.emit(now, event.GameEvent{Type: event.EventSessionWon, Amount: s.player.Treasures})
}

func (s *Session) lose(now time.Time, reason event.LossReason) {
	s.status = StatusLost
	s.lossReason = reason
	s.endedAt = now
	log.Printf("[session %s] lost (%s) with %d/%d treasures",
		s.id, reason, s.player.Treasures, s.cfg.TreasureGoal)
	s.emit(now, event.GameEvent{Type: event.EventSessionLost, Reason: reason, Amount: s.player.Treasures})
}

// ===== TICK =====

// Tick advances the simulation one step; no-op unless Running.
// Order: pickups (may win), contact damage (may lose), time limit (may lose), monsters, boost expiry
func (s *Session) Tick() {
	if s.status != StatusRunning {
		return
	}
	now := s.clock.Now()
	s.tick++
	defer s.publish(now)

	if s.collectTreasures(now) {
		return
	}
	if s.applyContactDamage(now) {
		return
	}
	if now.Sub(s.startedAt) > s.cfg.TimeLimit {
		s.lose(now, event.LossTimeout)
		return
	}

	s.advanceMonsters(now)
	s.expireBoost(now)
}

func (s *Session) expireBoost(now time.Time) {
	if s.boostSys.Update(now) {
		s.emit(now, event.GameEvent{Type: event.EventBoostExpired})
	}
}

// collectTreasures returns true when the goal was reached
func (s *Session) collectTreasures(now time.Time) bool {
	reach := s.player.Radius + parameter.TreasurePickupReach
	for i := range s.treasures {
		t := &s.treasures[i]
		if t.Collected {
			continue
		}
		if vmath.Distance(s.player.X, s.player.Y, t.X, t.Y) >= reach {
			continue
		}

		t.Collected = true
		s.player.Treasures++
		s.emit(now, event.GameEvent{Type: event.EventTreasureCollected, Index: i, Amount: s.player.Treasures})

		if s.player.Treasures >= s.cfg.TreasureGoal {
			s.win(now)
			return true
		}
	}
	return false
}

// applyContactDamage returns true when health ran out
func (s *Session) applyContactDamage(now time.Time) bool {
	if s.player.Stealth {
		return false
	}
	reach := s.player.Radius + parameter.MonsterContactReach
	for i := range s.monsters {
		m := &s.monsters[i]
		if vmath.Distance(s.player.X, s.player.Y, m.X, m.Y) >= reach {
			continue
		}

		s.player.Health -= parameter.MonsterContactDamage
		if s.player.Health < 0 {
			s.player.Health = 0
		}
		s.emit(now, event.GameEvent{Type: event.EventPlayerDamaged, Index: i, Amount: s.player.Health})

		if s.player.Health <= 0 {
			s.lose(now, event.LossHealth)
			return true
		}
	}
	return false
}

func (s *Session) advanceMonsters(now time.Time) {
	prev := make([]component.MonsterMode, len(s.monsters))
	for i := range s.monsters {
		prev[i] = s.monsters[i].Mode
	}

	s.monsterSys.Update(s.monsters, &s.player)

	for i := range s.monsters {
		if prev[i] == component.MonsterPatrol && s.monsters[i].Mode == component.MonsterChase {
			s.emit(now, event.GameEvent{Type: event.EventMonsterSpotted, Index: i})
		}
	}
}

// ===== INTENTS =====

// Move applies one movement intent; blocked moves are dropped. Returns true when the player moved
func (s *Session) Move(dir system.Direction) bool {
	if s.status != StatusRunning {
		return false
	}
	now := s.clock.Now()
	s.expireBoost(now)
	speed := system.EffectiveSpeed(s.cfg.PlayerSpeed, s.player.Stealth, s.boostSys.Multiplier(now))
	moved := system.MovePlayer(&s.player, dir, speed, &s.arena)
	s.publish(now)
	return moved
}

// Turn rotates the facing by steps * TurnStep degrees, positive is counter-clockwise
func (s *Session) Turn(steps float64) bool {
	if s.status != StatusRunning {
		return false
	}
	system.TurnPlayer(&s.player, steps*s.cfg.TurnStep)
	return true
}

// ToggleStealth flips stealth mode
func (s *Session) ToggleStealth() bool {
	if s.status != StatusRunning {
		return false
	}
	now := s.clock.Now()
	s.player.Stealth = !s.player.Stealth
	amount := 0
	if s.player.Stealth {
		amount = 1
	}
	s.emit(now, event.GameEvent{Type: event.EventStealthChanged, Amount: amount})
	s.publish(now)
	return true
}

// ActivateBoost requests the speed boost, returns true when it engaged
func (s *Session) ActivateBoost() bool {
	if s.status != StatusRunning {
		return false
	}
	now := s.clock.Now()
	s.expireBoost(now)
	if !s.boostSys.Activate(now) {
		return false
	}
	s.emit(now, event.GameEvent{Type: event.EventBoostActivated})
	s.publish(now)
	return true
}

// ===== QUERIES =====

func (s *Session) ID() string     { return s.id }
func (s *Session) Status() Status { return s.status }
func (s *Session) Config() Config { return s.cfg }

// Elapsed is time since start, frozen once the session ends
func (s *Session) Elapsed() time.Duration {
	switch {
	case s.status == StatusNotStarted:
		return 0
	case s.status.Finished():
		return s.endedAt.Sub(s.startedAt)
	default:
		return s.clock.Now().Sub(s.startedAt)
	}
}

// Remaining is the time left before the limit, never negative
func (s *Session) Remaining() time.Duration {
	left := s.cfg.TimeLimit - s.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

// ConsumeEvents drains events raised since the previous call
func (s *Session) ConsumeEvents() []event.GameEvent {
	return s.events.Consume()
}

func (s *Session) emit(now time.Time, ev event.GameEvent) {
	ev.Tick = s.tick
	ev.Time = now
	s.events.Push(ev)
}

// publish mirrors the session into the metric registry
func (s *Session) publish(now time.Time) {
	chasing := 0
	for i := range s.monsters {
		if s.monsters[i].Mode == component.MonsterChase {
			chasing++
		}
	}

	s.statStatus.Store(s.status.String())
	s.statID.Store(s.id)
	s.statTicks.Store(int64(s.tick))
	s.statHealth.Store(int64(s.player.Health))
	s.statTreasures.Store(int64(s.player.Treasures))
	s.statChasing.Store(int64(chasing))
	s.statStealth.Store(s.player.Stealth)
	s.statBoost.Store(s.boostSys.ActiveAt(now))
	s.statRemaining.Set(s.Remaining().Seconds())
	s.statPlayerX.Set(s.player.X)
	s.statPlayerY.Set(s.player.Y)
}
