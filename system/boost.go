package system

import (
	"time"

	"github.com/lixenwraith/dungeon-crawler/component"
	"github.com/lixenwraith/dungeon-crawler/parameter"
)

// BoostSystem drives the speed boost ability: INACTIVE -> ACTIVE on request once the cooldown
// since the previous activation has elapsed, ACTIVE -> INACTIVE once the duration has passed.
// There is no background timer; expiry is applied by whichever query observes it first
type BoostSystem struct {
	boost *component.BoostComponent
}

// NewBoostComponent returns a boost that is ready to fire at sessionStart
func NewBoostComponent(sessionStart time.Time, duration, cooldown time.Duration) component.BoostComponent {
	return component.BoostComponent{
		Duration:       duration,
		Cooldown:       cooldown,
		LastActivation: sessionStart.Add(-cooldown),
	}
}

// NewBoostSystem wraps the boost component owned by the session
func NewBoostSystem(boost *component.BoostComponent) *BoostSystem {
	return &BoostSystem{boost: boost}
}

// Activate attempts the INACTIVE -> ACTIVE transition, returns true when it happened
func (s *BoostSystem) Activate(now time.Time) bool {
	s.Update(now)
	if s.boost.Active || now.Sub(s.boost.LastActivation) < s.boost.Cooldown {
		return false
	}

	s.boost.Active = true
	s.boost.ActivatedAt = now
	s.boost.LastActivation = now
	return true
}

// Update applies lazy expiry, returns true on the tick the boost ran out
func (s *BoostSystem) Update(now time.Time) bool {
	if s.boost.Active && now.Sub(s.boost.ActivatedAt) > s.boost.Duration {
		s.boost.Active = false
		return true
	}
	return false
}

// IsActive reports the boost state at now, expiring it if due
func (s *BoostSystem) IsActive(now time.Time) bool {
	s.Update(now)
	return s.boost.Active
}

// ActiveAt is IsActive without applying the expiry, for read-only snapshots
func (s *BoostSystem) ActiveAt(now time.Time) bool {
	return s.boost.Active && now.Sub(s.boost.ActivatedAt) <= s.boost.Duration
}

// RemainingCooldown is the time until Activate can succeed, 0 when ready
func (s *BoostSystem) RemainingCooldown(now time.Time) time.Duration {
	left := s.boost.Cooldown - now.Sub(s.boost.LastActivation)
	if left < 0 {
		return 0
	}
	return left
}

// Remaining is the active time left, 0 when inactive or expired
func (s *BoostSystem) Remaining(now time.Time) time.Duration {
	if !s.ActiveAt(now) {
		return 0
	}
	left := s.boost.Duration - now.Sub(s.boost.ActivatedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Multiplier is the movement factor contributed by the boost
func (s *BoostSystem) Multiplier(now time.Time) float64 {
	if s.IsActive(now) {
		return parameter.BoostSpeedFactor
	}
	return 1.0
}
