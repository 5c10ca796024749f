package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/facility"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
	userHttp "github.com/quickcourt/quickcourt-backend/internal/user/http"
)

// FacilityTag holds minimal facility info for embedding in other responses.
type FacilityTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateFacilityRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Address     string   `json:"address" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Sports      []string `json:"sports" binding:"required,min=1"`
}

type UpdateFacilityRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Sports      []string `json:"sports"`
}

type ApprovalRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
	Reason   string `json:"reason"`
}

type ListFacilitiesRequest struct {
	request.ListParams
	City   string `form:"city"`
	Sport  string `form:"sport"`
	SortBy string `form:"sort_by" binding:"omitempty,oneof=created_at name city rating_count"`
}

type FacilityResponse struct {
	ID           string           `json:"id"`
	Owner        userHttp.UserTag `json:"owner"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Address      string           `json:"address"`
	City         string           `json:"city"`
	Sports       []string         `json:"sports"`
	Status       string           `json:"status"`
	RejectReason *string          `json:"reject_reason,omitempty"`
	Rating       float64          `json:"rating"`
	RatingCount  int              `json:"rating_count"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func NewFacilityResponse(f *facility.Facility) FacilityResponse {
	sports := f.Sports
	if sports == nil {
		sports = []string{}
	}
	return FacilityResponse{
		ID:           f.ID,
		Owner:        userHttp.UserTag{ID: f.OwnerID, Name: f.OwnerName},
		Name:         f.Name,
		Description:  f.Description,
		Address:      f.Address,
		City:         f.City,
		Sports:       sports,
		Status:       string(f.Status),
		RejectReason: f.RejectReason,
		Rating:       f.Rating,
		RatingCount:  f.RatingCount,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}
