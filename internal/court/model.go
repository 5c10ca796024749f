package court

import (
	"errors"
	"strings"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/clock"
)

var (
	ErrNotFound        = errors.New("court not found")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidFacility = errors.New("invalid facility_id")
	ErrInvalidSport    = errors.New("invalid sport")
	ErrInvalidSchedule = errors.New("invalid operating schedule")
	ErrInvalidPricing  = errors.New("invalid pricing rules")
)

// Sports supported by the platform. Kept as a flat list so validation stays
// in one place for both courts and facility sport tags.
var ValidSports = []string{
	"badminton", "basketball", "football", "squash", "swimming",
	"table-tennis", "tennis", "volleyball",
}

// DayHours is a single weekday entry of an operating schedule.
// Open and Close are zero-padded 24-hour "HH:MM" wall-clock strings,
// string-comparable because both are zero-padded.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// OperatingSchedule maps lowercase weekday names ("monday".."sunday") to hours.
// A weekday missing from the map is treated as closed.
type OperatingSchedule map[string]DayHours

// WeekdayKey returns the schedule key for a weekday.
func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// For returns the schedule entry for the weekday of the given date.
// The second return value is false when the weekday has no entry.
func (s OperatingSchedule) For(date time.Time) (DayHours, bool) {
	h, ok := s[WeekdayKey(date.Weekday())]
	return h, ok
}

// Validate checks weekday keys, clock formats, and that open < close on
// every day that is not marked closed.
func (s OperatingSchedule) Validate() error {
	if len(s) == 0 {
		return ErrInvalidSchedule
	}
	for day, h := range s {
		if !validWeekday(day) {
			return ErrInvalidSchedule
		}
		if h.Closed {
			continue
		}
		if !clock.Valid(h.Open) || !clock.Valid(h.Close) {
			return ErrInvalidSchedule
		}
		if h.Open >= h.Close {
			return ErrInvalidSchedule
		}
	}
	return nil
}

func validWeekday(day string) bool {
	switch day {
	case "sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday":
		return true
	}
	return false
}

// PricingRules holds the per-court price tiers and optional per-hour add-on
// costs. Prices are currency units per hour; nil tier prices fall back to
// BasePrice during evaluation.
type PricingRules struct {
	BasePrice              float64  `json:"base_price"`
	WeekendPrice           *float64 `json:"weekend_price,omitempty"`
	PeakHourPrice          *float64 `json:"peak_hour_price,omitempty"`
	Currency               string   `json:"currency"`
	EquipmentRentalCost    *float64 `json:"equipment_rental_cost,omitempty"`
	LightingAdditionalCost *float64 `json:"lighting_additional_cost,omitempty"`
}

// Validate rejects non-positive base prices and negative optional rates.
func (p PricingRules) Validate() error {
	if p.BasePrice <= 0 {
		return ErrInvalidPricing
	}
	if p.Currency == "" {
		return ErrInvalidPricing
	}
	for _, v := range []*float64{p.WeekendPrice, p.PeakHourPrice, p.EquipmentRentalCost, p.LightingAdditionalCost} {
		if v != nil && *v < 0 {
			return ErrInvalidPricing
		}
	}
	return nil
}

// Court represents a bookable unit inside a facility (e.g., "Court A").
type Court struct {
	ID           string
	FacilityID   string
	FacilityName string
	Name         string
	Sport        string
	Schedule     OperatingSchedule
	Pricing      PricingRules
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing courts.
type Filter struct {
	FacilityID string
	Sport      string

	// FacilityStatus narrows results to courts whose facility is in the
	// given approval state. Empty means no restriction.
	FacilityStatus string

	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
