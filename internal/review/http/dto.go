package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
	"github.com/quickcourt/quickcourt-backend/internal/review"
	userHttp "github.com/quickcourt/quickcourt-backend/internal/user/http"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

type ListReviewsRequest struct {
	request.ListParams
}

type ReviewResponse struct {
	ID         string           `json:"id"`
	FacilityID string           `json:"facility_id"`
	User       userHttp.UserTag `json:"user"`
	Rating     int              `json:"rating"`
	Comment    string           `json:"comment"`
	CreatedAt  time.Time        `json:"created_at"`
}

func NewReviewResponse(rv *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:         rv.ID,
		FacilityID: rv.FacilityID,
		User:       userHttp.UserTag{ID: rv.UserID, Name: rv.UserName},
		Rating:     rv.Rating,
		Comment:    rv.Comment,
		CreatedAt:  rv.CreatedAt,
	}
}
