package http

import (
	"fmt"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/photo"
)

type PhotoResponse struct {
	ID         string    `json:"id"`
	FacilityID string    `json:"facility_id"`
	URL        string    `json:"url"`
	ThumbURL   string    `json:"thumb_url"`
	Caption    string    `json:"caption,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	return PhotoResponse{
		ID:         p.ID,
		FacilityID: p.FacilityID,
		URL:        fmt.Sprintf("/v1/photos/%s/file", p.ID),
		ThumbURL:   fmt.Sprintf("/v1/photos/%s/file?thumb=true", p.ID),
		Caption:    p.Caption,
		CreatedAt:  p.CreatedAt,
	}
}
