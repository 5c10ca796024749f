package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/response"
)

type Handler struct {
	service court.Service
}

func NewHandler(service court.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var q ListCourtsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	q.Normalize()

	// Discovery only surfaces courts of approved facilities.
	courts, total, err := h.service.List(c.Request.Context(), court.Filter{
		FacilityID:     q.FacilityID,
		Sport:          q.Sport,
		FacilityStatus: "approved",
		Page:           q.Page,
		PageSize:       q.PageSize,
		SortBy:         q.SortBy,
		SortOrder:      q.SortOrder,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courts"})
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, ct := range courts {
		items[i] = NewCourtResponse(ct)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, q.Page, q.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	ct, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get court"})
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateCourtRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ct, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), court.CreateRequest{
		FacilityID: body.FacilityID,
		Name:       body.Name,
		Sport:      body.Sport,
		Schedule:   body.Schedule,
		Pricing:    body.Pricing,
	})
	if err != nil {
		writeCourtError(c, err, "failed to create court")
		return
	}

	c.JSON(http.StatusCreated, NewCourtResponse(ct))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateCourtRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ct, err := h.service.Update(c.Request.Context(), id, auth.GetUserID(c), court.UpdateRequest{
		Name:     body.Name,
		Sport:    body.Sport,
		Schedule: body.Schedule,
		Pricing:  body.Pricing,
	})
	if err != nil {
		writeCourtError(c, err, "failed to update court")
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, auth.GetUserID(c)); err != nil {
		writeCourtError(c, err, "failed to delete court")
		return
	}

	c.Status(http.StatusNoContent)
}

func writeCourtError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, court.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
	case errors.Is(err, court.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, court.ErrEmptyName),
		errors.Is(err, court.ErrInvalidSport),
		errors.Is(err, court.ErrInvalidFacility),
		errors.Is(err, court.ErrInvalidSchedule),
		errors.Is(err, court.ErrInvalidPricing):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
