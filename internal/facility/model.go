package facility

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("facility not found")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrInvalidSport       = errors.New("invalid sport")
	ErrInvalidApproval    = errors.New("invalid approval decision")
	ErrReasonRequired     = errors.New("rejection requires a reason")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrAlreadyDecided     = errors.New("facility approval already decided")
	ErrNotApproved        = errors.New("facility is not approved")
	ErrApprovalNotAllowed = errors.New("approval state change not allowed")
)

type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// CanMoveTo encodes the listing approval lifecycle: pending can be approved
// or rejected; a rejected listing returns to pending when the owner edits and
// resubmits; approved is terminal.
func (s ApprovalStatus) CanMoveTo(next ApprovalStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected
	case StatusRejected:
		return next == StatusPending
	}
	return false
}

// Facility is a sports venue listed by an owner. Courts belong to exactly
// one facility; only approved facilities are publicly visible and bookable.
type Facility struct {
	ID           string
	OwnerID      string
	OwnerName    string
	Name         string
	Description  string
	Address      string
	City         string
	Sports       []string
	Status       ApprovalStatus
	RejectReason *string
	Rating       float64
	RatingCount  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Filter struct {
	OwnerID   string
	City      string
	Sport     string
	Status    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
