package game

// Event is a side-effect notification produced by a state transition.
// The platform maps events to sound cues and UI changes; the game core
// itself performs no I/O.
type Event int

const (
	EventAte Event = iota
	EventLevelUp
	EventGameOver
	EventWon
)

func (e Event) String() string {
	switch e {
	case EventAte:
		return "ate"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// TickResult is returned by Tick after each simulation step.
type TickResult struct {
	Events []Event
}

// Has returns true if the result contains the given event.
func (r TickResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
