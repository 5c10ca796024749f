package booking

// allowedTransitions is the booking lifecycle. Completed, cancelled and
// no-show are terminal.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// CanTransition reports whether a booking in status from may move to status
// to. It only answers the question; callers reject disallowed transitions
// with ErrInvalidTransition and perform the actual state change.
func CanTransition(from, to Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
