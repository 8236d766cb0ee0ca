package event

import "testing"

func TestEventQueueConsumeIsFIFOAndDrains(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(GameEvent{Type: EventTreasureCollected, Amount: 1})
	eq.Push(GameEvent{Type: EventPlayerDamaged, Amount: 99})
	eq.Push(GameEvent{Type: EventSessionWon})

	got := eq.Consume()
	if len(got) != 3 {
		t.Fatalf("Consume returned %d events, want 3", len(got))
	}
	want := []EventType{EventTreasureCollected, EventPlayerDamaged, EventSessionWon}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("event %d = %v, want %v", i, ev.Type, want[i])
		}
	}

	if eq.Len() != 0 {
		t.Errorf("Len after Consume = %d, want 0", eq.Len())
	}
	if again := eq.Consume(); again != nil {
		t.Errorf("second Consume = %v, want nil", again)
	}
}

func TestEventQueueConsumeReturnsCopy(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(GameEvent{Type: EventBoostActivated})
	got := eq.Consume()

	eq.Push(GameEvent{Type: EventBoostExpired})
	if got[0].Type != EventBoostActivated {
		t.Errorf("consumed slice was overwritten by later Push: %v", got[0].Type)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventSessionLost.String() != "session_lost" {
		t.Errorf("String = %q", EventSessionLost.String())
	}
	if EventType(999).String() != "unknown" {
		t.Errorf("unknown type String = %q", EventType(999).String())
	}
}
