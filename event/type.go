package event

// EventType represents the type of gameplay event raised during a tick or intent
type EventType int

const (
	// EventSessionStarted fires when a session enters RUNNING, on start and on restart
	// Consumer: logging, AudioSystem | Payload: none
	EventSessionStarted EventType = iota

	// EventTreasureCollected fires once per pickup
	// Consumer: AudioSystem | Index: treasure index, Amount: collected count after pickup
	EventTreasureCollected

	// EventPlayerDamaged fires once per touching monster per tick
	// Consumer: AudioSystem | Index: monster index, Amount: health after damage
	EventPlayerDamaged

	// EventBoostActivated fires on the INACTIVE -> ACTIVE transition
	EventBoostActivated

	// EventBoostExpired fires on the tick the boost runs out
	EventBoostExpired

	// EventStealthChanged fires on every stealth toggle | Amount: 1 entering, 0 leaving
	EventStealthChanged

	// EventMonsterSpotted fires when a monster switches from patrol to chase | Index: monster index
	EventMonsterSpotted

	// EventSessionWon fires on RUNNING -> WON
	EventSessionWon

	// EventSessionLost fires on RUNNING -> LOST | Reason distinguishes health from timeout
	EventSessionLost
)

var eventNames = map[EventType]string{
	EventSessionStarted:    "session_started",
	EventTreasureCollected: "treasure_collected",
	EventPlayerDamaged:     "player_damaged",
	EventBoostActivated:    "boost_activated",
	EventBoostExpired:      "boost_expired",
	EventStealthChanged:    "stealth_changed",
	EventMonsterSpotted:    "monster_spotted",
	EventSessionWon:        "session_won",
	EventSessionLost:       "session_lost",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// LossReason explains EventSessionLost
type LossReason uint8

const (
	LossNone LossReason = iota
	LossHealth
	LossTimeout
)

func (r LossReason) String() string {
	switch r {
	case LossHealth:
		return "health"
	case LossTimeout:
		return "timeout"
	default:
		return "none"
	}
}
