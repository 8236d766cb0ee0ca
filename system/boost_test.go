package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/dungeon-crawler/component"
	"github.com/lixenwraith/dungeon-crawler/parameter"
)

func newTestBoost(start time.Time) (*component.BoostComponent, *BoostSystem) {
	b := NewBoostComponent(start, parameter.BoostDuration, parameter.BoostCooldown)
	return &b, NewBoostSystem(&b)
}

func TestBoostReadyAtSessionStart(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, bs := newTestBoost(start)

	if cd := bs.RemainingCooldown(start); cd != 0 {
		t.Fatalf("RemainingCooldown at start = %v, want 0", cd)
	}
	if !bs.Activate(start) {
		t.Fatal("Activate at session start should succeed")
	}
}

func TestBoostGating(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b, bs := newTestBoost(start)

	if !bs.Activate(start) {
		t.Fatal("first activation failed")
	}

	// Every instant before the cooldown elapses is rejected and leaves state alone
	for _, offset := range []time.Duration{
		time.Second, 3 * time.Second, 4 * time.Second, 8 * time.Second, 9*time.Second - time.Nanosecond,
	} {
		now := start.Add(offset)
		last, activated := b.LastActivation, b.ActivatedAt
		if bs.Activate(now) {
			t.Fatalf("Activate at +%v succeeded, want rejection before cooldown", offset)
		}
		if !b.LastActivation.Equal(last) || !b.ActivatedAt.Equal(activated) {
			t.Fatalf("rejected Activate at +%v changed timestamps", offset)
		}
	}

	now := start.Add(parameter.BoostCooldown)
	if !bs.Activate(now) {
		t.Fatal("Activate exactly at cooldown should succeed")
	}
	if !b.LastActivation.Equal(now) || !b.ActivatedAt.Equal(now) {
		t.Errorf("timestamps not recorded: activated=%v last=%v want %v", b.ActivatedAt, b.LastActivation, now)
	}
}

func TestBoostAutoExpiry(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, bs := newTestBoost(start)
	t0 := start.Add(5 * time.Second)
	bs.Activate(t0)

	for _, offset := range []time.Duration{0, time.Second, 2999 * time.Millisecond, 3 * time.Second} {
		if !bs.IsActive(t0.Add(offset)) {
			t.Errorf("IsActive at t0+%v = false, want true", offset)
		}
	}
	if bs.IsActive(t0.Add(3*time.Second + time.Nanosecond)) {
		t.Error("IsActive just after duration = true, want false")
	}
	if bs.Remaining(t0.Add(4*time.Second)) != 0 {
		t.Error("Remaining after expiry should be 0")
	}
}

func TestBoostRemainingCooldown(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, bs := newTestBoost(start)
	bs.Activate(start)

	if got := bs.RemainingCooldown(start.Add(4 * time.Second)); got != 5*time.Second {
		t.Errorf("RemainingCooldown = %v, want 5s", got)
	}
	if got := bs.RemainingCooldown(start.Add(20 * time.Second)); got != 0 {
		t.Errorf("RemainingCooldown after cooldown = %v, want 0", got)
	}
}

func TestBoostMultiplierComposesWithStealth(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, bs := newTestBoost(start)

	if got := EffectiveSpeed(10, true, bs.Multiplier(start)); got != 5 {
		t.Errorf("stealth only speed = %v, want 5", got)
	}

	bs.Activate(start)
	if got := EffectiveSpeed(10, false, bs.Multiplier(start)); got != 20 {
		t.Errorf("boost only speed = %v, want 20", got)
	}
	if got := EffectiveSpeed(10, true, bs.Multiplier(start)); got != 10 {
		t.Errorf("stealth+boost speed = %v, want 10", got)
	}
}

func TestBoostActiveAtDoesNotMutate(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b, bs := newTestBoost(start)
	bs.Activate(start)

	late := start.Add(10 * time.Second)
	if bs.ActiveAt(late) {
		t.Fatal("ActiveAt past duration = true")
	}
	if !b.Active {
		t.Fatal("ActiveAt cleared the Active flag, it must be read-only")
	}
	if !bs.Update(late) {
		t.Fatal("Update should report the expiry")
	}
	if b.Active {
		t.Fatal("Update did not clear Active")
	}
}

func TestBoostRejectsActivationWhileActive(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	// Cooldown shorter than duration, allowed by config
	b := NewBoostComponent(start, 3*time.Second, time.Second)
	bs := NewBoostSystem(&b)

	if !bs.Activate(start) {
		t.Fatal("first activation failed")
	}
	if bs.Activate(start.Add(2 * time.Second)) {
		t.Fatal("Activate succeeded while boost was still active")
	}
	if !b.ActivatedAt.Equal(start) {
		t.Errorf("ActivatedAt = %v, want unchanged %v", b.ActivatedAt, start)
	}

	// Once expired the shorter cooldown has long elapsed
	if !bs.Activate(start.Add(3*time.Second + time.Millisecond)) {
		t.Error("Activate after expiry should succeed")
	}
}
