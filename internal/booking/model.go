package booking

import (
	"net/http"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "booking not found")
	ErrCourtNotFound      = apperror.New(http.StatusNotFound, "court not found")
	ErrFacilityUnapproved = apperror.New(http.StatusBadRequest, "facility is not approved for booking")
	ErrClosedDay          = apperror.New(http.StatusBadRequest, "court is closed on the requested day")
	ErrTimeConflict       = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTimeRange   = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidTransition  = apperror.New(http.StatusBadRequest, "booking status transition not allowed")
	ErrInvalidStatus      = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrDatePast           = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrPermissionDenied   = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no-show"
)

// Valid reports whether s is one of the five booking statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// Occupies reports whether a booking in this status blocks its time slot.
// Only pending and confirmed bookings hold a slot; cancelled, completed and
// no-show never block new bookings.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

// AddOns are the optional services a player can toggle on a booking.
type AddOns struct {
	Equipment bool `json:"equipment"`
	Lighting  bool `json:"lighting"`
	Coaching  bool `json:"coaching"`
	Cleaning  bool `json:"cleaning"`
}

// AddOnCosts is the per-line-item cost breakdown of the selected add-ons.
type AddOnCosts struct {
	Equipment float64 `json:"equipment"`
	Lighting  float64 `json:"lighting"`
	Coaching  float64 `json:"coaching"`
	Cleaning  float64 `json:"cleaning"`
}

// Sum returns the total of all add-on line items.
func (c AddOnCosts) Sum() float64 {
	return c.Equipment + c.Lighting + c.Coaching + c.Cleaning
}

type Booking struct {
	ID           string
	CourtID      string
	CourtName    string
	FacilityID   string
	FacilityName string
	UserID       string
	UserName     string
	Date         time.Time // calendar date, time part is always midnight UTC
	StartTime    string    // "HH:MM"
	EndTime      string    // "HH:MM"
	Status       Status

	// Charge fields populated from the price evaluation at creation time.
	Tier          PriceTier
	UnitPrice     float64
	DurationHours float64
	BaseCost      float64
	AddOns        AddOns
	AddOnCosts    AddOnCosts
	TotalAmount   float64
	Currency      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Filter struct {
	UserID     string
	CourtID    string
	FacilityID string
	OwnerID    string
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
