package event

import "time"

// GameEvent is a flat record; fields unused by a type stay zero
type GameEvent struct {
	Type   EventType
	Tick   uint64
	Time   time.Time
	Index  int
	Amount int
	Reason LossReason
}
