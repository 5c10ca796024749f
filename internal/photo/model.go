package photo

import (
	"net/http"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "photo not found")
	ErrFacilityNotFound = apperror.New(http.StatusNotFound, "facility not found")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrInvalidImage     = apperror.New(http.StatusBadRequest, "file is not a decodable image")
)

type Photo struct {
	ID         string
	FacilityID string
	Path       string
	ThumbPath  string
	Caption    string
	CreatedAt  time.Time
}
