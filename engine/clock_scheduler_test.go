package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/dungeon-crawler/component"
	"github.com/lixenwraith/dungeon-crawler/event"
)

// recordingHandler collects dispatched events
type recordingHandler struct {
	mu     sync.Mutex
	events []event.GameEvent
}

func (h *recordingHandler) HandleEvent(ev event.GameEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
}

func (h *recordingHandler) types() []event.EventType {
	h.mu.Lock()
	defer h.mu.Unlock()
	return eventTypes(h.events)
}

// TestClockSchedulerDoDispatches verifies intents run under the lock and their events reach handlers
func TestClockSchedulerDoDispatches(t *testing.T) {
	s, _ := newRunningSession(t, nil)
	cs := NewClockScheduler(s, 10*time.Millisecond)
	h := &recordingHandler{}
	cs.RegisterEventHandler(h)

	cs.Do(func(s *Session) { s.ToggleStealth() })

	got := h.types()
	if len(got) != 1 || got[0] != event.EventStealthChanged {
		t.Fatalf("dispatched %v, want [stealth_changed]", got)
	}
	if !cs.View().Player.Stealth {
		t.Error("View does not reflect stealth")
	}
}

// TestClockSchedulerStep verifies one Step is one tick and signals the render loop
func TestClockSchedulerStep(t *testing.T) {
	s, _ := newRunningSession(t, nil)
	s.ApplyLayout(Layout{Treasures: []component.TreasureComponent{{X: 10, Y: 0}, farTreasure()}})

	cs := NewClockScheduler(s, 10*time.Millisecond)
	var seen []event.EventType
	cs.RegisterEventHandler(EventHandlerFunc(func(ev event.GameEvent) {
		seen = append(seen, ev.Type)
	}))

	cs.Step()
	if cs.TickCount() != 1 || cs.View().Tick != 1 {
		t.Fatalf("tick count = %d, session tick = %d, want 1", cs.TickCount(), cs.View().Tick)
	}
	if len(seen) != 1 || seen[0] != event.EventTreasureCollected {
		t.Fatalf("events = %v, want [treasure_collected]", seen)
	}

	select {
	case <-cs.Updates():
	default:
		t.Fatal("no update signal after Step")
	}

	// Signals coalesce rather than block
	cs.Step()
	cs.Step()
	select {
	case <-cs.Updates():
	default:
		t.Fatal("no update signal after repeated Steps")
	}
	select {
	case <-cs.Updates():
		t.Fatal("update signals were not coalesced")
	default:
	}
}

// TestClockSchedulerStartStop verifies the loop ticks on its own and Stop is idempotent
func TestClockSchedulerStartStop(t *testing.T) {
	s, _ := newRunningSession(t, nil)
	s.ApplyLayout(Layout{Treasures: []component.TreasureComponent{farTreasure()}})
	cs := NewClockScheduler(s, time.Millisecond)

	cs.Start()
	cs.Start()

	deadline := time.After(2 * time.Second)
	for cs.TickCount() < 3 {
		select {
		case <-deadline:
			t.Fatalf("scheduler did not tick, count %d", cs.TickCount())
		case <-cs.Updates():
		}
	}

	cs.Stop()
	count := cs.TickCount()
	time.Sleep(20 * time.Millisecond)
	if cs.TickCount() != count {
		t.Errorf("ticks continued after Stop: %d -> %d", count, cs.TickCount())
	}

	cs.Stop()
}

// TestClockSchedulerStopBeforeStart verifies an early Stop keeps the loop from ever running
func TestClockSchedulerStopBeforeStart(t *testing.T) {
	s, _ := newRunningSession(t, nil)
	s.ApplyLayout(Layout{Treasures: []component.TreasureComponent{farTreasure()}})
	cs := NewClockScheduler(s, time.Millisecond)

	cs.Stop()
	cs.Start()

	time.Sleep(20 * time.Millisecond)
	if n := cs.TickCount(); n != 0 {
		t.Errorf("stopped scheduler ticked %d times", n)
	}

	done := make(chan struct{})
	go func() {
		cs.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked after Stop/Start sequence")
	}
}

// TestClockSchedulerConcurrentIntents runs intents against the live loop; meaningful under -race
func TestClockSchedulerConcurrentIntents(t *testing.T) {
	s, _ := newRunningSession(t, nil)
	s.ApplyLayout(Layout{Treasures: []component.TreasureComponent{farTreasure()}})
	cs := NewClockScheduler(s, time.Millisecond)
	cs.Start()
	defer cs.Stop()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				cs.Do(func(s *Session) { s.Turn(1) })
				_ = cs.View()
			}
		}()
	}
	wg.Wait()

	want := float64(400 * 5 % 360)
	if got := cs.View().Player.Angle; got != want {
		t.Errorf("angle = %v, want %v", got, want)
	}
}
