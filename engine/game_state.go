package engine

// Status is the session state machine position
//
//	NotStarted --Start--> Running
//	Running --all treasures--> Won
//	Running --health <= 0 or time limit--> Lost
//	Won|Lost --Restart--> NotStarted --regenerate--> Running
type Status uint8

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Finished reports whether the session reached a terminal status
func (s Status) Finished() bool {
	return s == StatusWon || s == StatusLost
}
