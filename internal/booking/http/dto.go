package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/booking"
	courtHttp "github.com/quickcourt/quickcourt-backend/internal/court/http"
	facHttp "github.com/quickcourt/quickcourt-backend/internal/facility/http"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
	userHttp "github.com/quickcourt/quickcourt-backend/internal/user/http"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	CourtID   string         `json:"court_id" binding:"required,uuid"`
	Date      string         `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string         `json:"start_time" binding:"required,len=5"`
	EndTime   string         `json:"end_time" binding:"required,len=5"`
	AddOns    booking.AddOns `json:"add_ons"`
}

type ListBookingsRequest struct {
	request.ListParams
	CourtID    string `form:"court_id" binding:"omitempty,uuid"`
	FacilityID string `form:"facility_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed no-show"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=date created_at total_amount"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed no-show"`
}

type AvailabilityRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

type ChargeResponse struct {
	Tier          string             `json:"tier"`
	UnitPrice     float64            `json:"unit_price"`
	DurationHours float64            `json:"duration_hours"`
	BaseCost      float64            `json:"base_cost"`
	AddOns        booking.AddOns     `json:"add_ons"`
	AddOnCosts    booking.AddOnCosts `json:"add_on_costs"`
	TotalAmount   float64            `json:"total_amount"`
	Currency      string             `json:"currency"`
}

type BookingResponse struct {
	ID        string              `json:"id"`
	Court     courtHttp.CourtTag  `json:"court"`
	Facility  facHttp.FacilityTag `json:"facility"`
	User      userHttp.UserTag    `json:"user"`
	Date      string              `json:"date"`
	StartTime string              `json:"start_time"`
	EndTime   string              `json:"end_time"`
	Status    string              `json:"status"`
	Charge    ChargeResponse      `json:"charge"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Court:     courtHttp.CourtTag{ID: b.CourtID, Name: b.CourtName},
		Facility:  facHttp.FacilityTag{ID: b.FacilityID, Name: b.FacilityName},
		User:      userHttp.UserTag{ID: b.UserID, Name: b.UserName},
		Date:      b.Date.Format(dateLayout),
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    string(b.Status),
		Charge: ChargeResponse{
			Tier:          string(b.Tier),
			UnitPrice:     b.UnitPrice,
			DurationHours: b.DurationHours,
			BaseCost:      b.BaseCost,
			AddOns:        b.AddOns,
			AddOnCosts:    b.AddOnCosts,
			TotalAmount:   b.TotalAmount,
			Currency:      b.Currency,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type AvailabilityResponse struct {
	CourtID string             `json:"court_id"`
	Date    string             `json:"date"`
	Slots   []booking.TimeSlot `json:"slots"`
}
