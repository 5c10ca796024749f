package facility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApprovalTransitions(t *testing.T) {
	all := []ApprovalStatus{StatusPending, StatusApproved, StatusRejected}

	allowed := map[ApprovalStatus]map[ApprovalStatus]bool{
		StatusPending:  {StatusApproved: true, StatusRejected: true},
		StatusRejected: {StatusPending: true},
		StatusApproved: {},
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[from][to], from.CanMoveTo(to), "%s -> %s", from, to)
		}
	}
}
