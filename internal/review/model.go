package review

import (
	"net/http"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "review not found")
	ErrAlreadyReviewed  = apperror.New(http.StatusConflict, "facility already reviewed by this user")
	ErrNoCompletedVisit = apperror.New(http.StatusBadRequest, "a completed booking at the facility is required to review it")
	ErrInvalidRating    = apperror.New(http.StatusBadRequest, "rating must be between 1 and 5")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrFacilityNotFound = apperror.New(http.StatusNotFound, "facility not found")
)

type Review struct {
	ID           string
	FacilityID   string
	FacilityName string
	UserID       string
	UserName     string
	Rating       int
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Filter struct {
	FacilityID string
	Page       int
	PageSize   int
	SortOrder  string
}
