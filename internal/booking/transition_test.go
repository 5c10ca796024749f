package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionExhaustive(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow}

	allowed := map[Status]map[Status]bool{
		StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
		StatusConfirmed: {StatusCompleted: true, StatusCancelled: true, StatusNoShow: true},
		StatusCancelled: {},
		StatusCompleted: {},
		StatusNoShow:    {},
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[from][to], CanTransition(from, to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	for _, terminal := range []Status{StatusCancelled, StatusCompleted, StatusNoShow} {
		for _, to := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow} {
			assert.False(t, CanTransition(terminal, to), "terminal %s must not transition to %s", terminal, to)
		}
	}
}

func TestStatusOccupies(t *testing.T) {
	assert.True(t, StatusPending.Occupies())
	assert.True(t, StatusConfirmed.Occupies())
	assert.False(t, StatusCancelled.Occupies())
	assert.False(t, StatusCompleted.Occupies())
	assert.False(t, StatusNoShow.Occupies())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusNoShow.Valid())
	assert.False(t, Status("rescheduled").Valid())
}
