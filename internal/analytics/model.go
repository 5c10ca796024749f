package analytics

import "time"

// AdminStats is the platform-wide dashboard for admins.
type AdminStats struct {
	UsersByRole       map[string]int
	FacilitiesByState map[string]int
	BookingsByStatus  map[string]int
	BookingsPerDay    []DailyCount
}

type DailyCount struct {
	Date  time.Time
	Count int
}

// FacilityStats is one row of an owner's earnings dashboard. Earnings sum
// the total amounts of confirmed and completed bookings only.
type FacilityStats struct {
	FacilityID   string
	FacilityName string
	ActiveCourts int
	Bookings     int
	Earnings     float64
}

// Window is an inclusive date range.
type Window struct {
	From time.Time
	To   time.Time
}
