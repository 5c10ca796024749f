package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/facility"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/response"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

type Handler struct {
	service facility.Service
}

func NewHandler(service facility.Service) *Handler {
	return &Handler{service: service}
}

// ListPublic returns approved facilities only, for discovery.
func (h *Handler) ListPublic(c *gin.Context) {
	var q ListFacilitiesRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	q.Normalize()

	facilities, total, err := h.service.List(c.Request.Context(), facility.Filter{
		City:      q.City,
		Sport:     q.Sport,
		Status:    string(facility.StatusApproved),
		Page:      q.Page,
		PageSize:  q.PageSize,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list facilities"})
		return
	}

	c.JSON(http.StatusOK, pageOf(facilities, q.Page, q.PageSize, total))
}

// Get returns a facility. Unapproved listings are only visible to their
// owner and admins.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, facility.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get facility"})
		return
	}

	if f.Status != facility.StatusApproved {
		userID := auth.GetUserID(c)
		isAdmin := auth.GetUserRole(c) == string(user.RoleAdmin)
		if !isAdmin && f.OwnerID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
			return
		}
	}

	c.JSON(http.StatusOK, NewFacilityResponse(f))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateFacilityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	f, err := h.service.Create(c.Request.Context(), facility.CreateRequest{
		OwnerID:     auth.GetUserID(c),
		Name:        body.Name,
		Description: body.Description,
		Address:     body.Address,
		City:        body.City,
		Sports:      body.Sports,
	})
	if err != nil {
		switch {
		case errors.Is(err, facility.ErrEmptyName), errors.Is(err, facility.ErrInvalidSport):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create facility"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewFacilityResponse(f))
}

// ListMine returns the owner's facilities regardless of approval status.
func (h *Handler) ListMine(c *gin.Context) {
	var q ListFacilitiesRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	q.Normalize()

	facilities, total, err := h.service.List(c.Request.Context(), facility.Filter{
		OwnerID:   auth.GetUserID(c),
		Page:      q.Page,
		PageSize:  q.PageSize,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list facilities"})
		return
	}

	c.JSON(http.StatusOK, pageOf(facilities, q.Page, q.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateFacilityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	f, err := h.service.Update(c.Request.Context(), id, auth.GetUserID(c), facility.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Address:     body.Address,
		City:        body.City,
		Sports:      body.Sports,
	})
	if err != nil {
		switch {
		case errors.Is(err, facility.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		case errors.Is(err, facility.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, facility.ErrEmptyName), errors.Is(err, facility.ErrInvalidSport):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update facility"})
		}
		return
	}

	c.JSON(http.StatusOK, NewFacilityResponse(f))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	isAdmin := auth.GetUserRole(c) == string(user.RoleAdmin)
	err := h.service.Delete(c.Request.Context(), id, auth.GetUserID(c), isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, facility.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		case errors.Is(err, facility.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete facility"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPending returns facilities awaiting admin review.
func (h *Handler) ListPending(c *gin.Context) {
	var q ListFacilitiesRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	q.Normalize()

	facilities, total, err := h.service.List(c.Request.Context(), facility.Filter{
		Status:    string(facility.StatusPending),
		Page:      q.Page,
		PageSize:  q.PageSize,
		SortBy:    q.SortBy,
		SortOrder: "ASC",
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list facilities"})
		return
	}

	c.JSON(http.StatusOK, pageOf(facilities, q.Page, q.PageSize, total))
}

func (h *Handler) Decide(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body ApprovalRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	f, err := h.service.Decide(c.Request.Context(), id, facility.ApprovalRequest{
		Approve: body.Decision == "approve",
		Reason:  body.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, facility.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		case errors.Is(err, facility.ErrReasonRequired), errors.Is(err, facility.ErrApprovalNotAllowed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update approval"})
		}
		return
	}

	c.JSON(http.StatusOK, NewFacilityResponse(f))
}

func pageOf(facilities []*facility.Facility, page, pageSize, total int) response.PageResponse[FacilityResponse] {
	items := make([]FacilityResponse, len(facilities))
	for i, f := range facilities {
		items[i] = NewFacilityResponse(f)
	}
	return response.NewPageResponse(items, page, pageSize, total)
}
