package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("initial time = %v, want %v", mock.Now(), start)
	}

	mock.Advance(90 * time.Second)
	if want := start.Add(90 * time.Second); !mock.Now().Equal(want) {
		t.Errorf("after Advance = %v, want %v", mock.Now(), want)
	}

	jump := start.Add(time.Hour)
	mock.Set(jump)
	if !mock.Now().Equal(jump) {
		t.Errorf("after Set = %v, want %v", mock.Now(), jump)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
