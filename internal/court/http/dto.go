package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/court"
	facHttp "github.com/quickcourt/quickcourt-backend/internal/facility/http"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
)

// CourtTag holds minimal court info for embedding in other responses.
type CourtTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateCourtRequest struct {
	FacilityID string                  `json:"facility_id" binding:"required,uuid"`
	Name       string                  `json:"name" binding:"required"`
	Sport      string                  `json:"sport" binding:"required"`
	Schedule   court.OperatingSchedule `json:"schedule" binding:"required"`
	Pricing    court.PricingRules      `json:"pricing" binding:"required"`
}

type UpdateCourtRequest struct {
	Name     *string                 `json:"name"`
	Sport    *string                 `json:"sport"`
	Schedule court.OperatingSchedule `json:"schedule"`
	Pricing  *court.PricingRules     `json:"pricing"`
}

type ListCourtsRequest struct {
	request.ListParams
	FacilityID string `form:"facility_id" binding:"omitempty,uuid"`
	Sport      string `form:"sport"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=created_at name sport"`
}

type CourtResponse struct {
	ID        string                  `json:"id"`
	Facility  facHttp.FacilityTag     `json:"facility"`
	Name      string                  `json:"name"`
	Sport     string                  `json:"sport"`
	Schedule  court.OperatingSchedule `json:"schedule"`
	Pricing   court.PricingRules      `json:"pricing"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	return CourtResponse{
		ID:        c.ID,
		Facility:  facHttp.FacilityTag{ID: c.FacilityID, Name: c.FacilityName},
		Name:      c.Name,
		Sport:     c.Sport,
		Schedule:  c.Schedule,
		Pricing:   c.Pricing,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
