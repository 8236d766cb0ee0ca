package event

// EventQueue buffers events raised by the session until the driver consumes them
// Single owner: the session pushes and the scheduler consumes under the same lock
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, 16)}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events = append(eq.events, ev)
}

// Consume returns pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	eq.events = eq.events[:0]
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

// Reset drops pending events
func (eq *EventQueue) Reset() {
	eq.events = eq.events[:0]
}
