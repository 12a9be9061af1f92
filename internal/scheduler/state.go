package scheduler

// State is the position of a task in its checkpoint sequence
type State int32

const (
	StateArmed State = iota
	StateReminderFired
	StateStartFired
	StateFollowUpFired
	StateDone
	StateCancelled
)

// Terminal reports whether no further transitions are possible
func (s State) Terminal() bool {
	return s == StateDone || s == StateCancelled
}

func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateReminderFired:
		return "reminder"
	case StateStartFired:
		return "start"
	case StateFollowUpFired:
		return "follow_up"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
