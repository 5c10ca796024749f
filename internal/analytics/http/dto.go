package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/analytics"
)

type StatsWindowRequest struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// Window parses the bounds, defaulting to the 30 days ending today.
func (r StatsWindowRequest) Window(now time.Time) analytics.Window {
	w := analytics.Window{
		From: now.AddDate(0, 0, -30),
		To:   now,
	}
	if r.From != "" {
		w.From, _ = time.Parse("2006-01-02", r.From)
	}
	if r.To != "" {
		w.To, _ = time.Parse("2006-01-02", r.To)
	}
	return w
}

type DailyCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type AdminStatsResponse struct {
	UsersByRole       map[string]int       `json:"users_by_role"`
	FacilitiesByState map[string]int       `json:"facilities_by_state"`
	BookingsByStatus  map[string]int       `json:"bookings_by_status"`
	BookingsPerDay    []DailyCountResponse `json:"bookings_per_day"`
}

func NewAdminStatsResponse(s *analytics.AdminStats) AdminStatsResponse {
	daily := make([]DailyCountResponse, len(s.BookingsPerDay))
	for i, d := range s.BookingsPerDay {
		daily[i] = DailyCountResponse{Date: d.Date.Format("2006-01-02"), Count: d.Count}
	}
	return AdminStatsResponse{
		UsersByRole:       s.UsersByRole,
		FacilitiesByState: s.FacilitiesByState,
		BookingsByStatus:  s.BookingsByStatus,
		BookingsPerDay:    daily,
	}
}

type FacilityStatsResponse struct {
	FacilityID   string  `json:"facility_id"`
	FacilityName string  `json:"facility_name"`
	ActiveCourts int     `json:"active_courts"`
	Bookings     int     `json:"bookings"`
	Earnings     float64 `json:"earnings"`
}

func NewFacilityStatsResponse(s analytics.FacilityStats) FacilityStatsResponse {
	return FacilityStatsResponse{
		FacilityID:   s.FacilityID,
		FacilityName: s.FacilityName,
		ActiveCourts: s.ActiveCourts,
		Bookings:     s.Bookings,
		Earnings:     s.Earnings,
	}
}
