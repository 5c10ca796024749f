package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/booking"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/response"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), booking.CreateRequest{
		CourtID:   body.CourtID,
		Date:      date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		AddOns:    body.AddOns,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id, auth.GetUserID(c), user.Role(auth.GetUserRole(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// List returns bookings scoped by the caller's role: players see their own,
// owners see bookings at their facilities, admins see everything.
func (h *Handler) List(c *gin.Context) {
	var q ListBookingsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	q.Normalize()

	filter := booking.Filter{
		CourtID:    q.CourtID,
		FacilityID: q.FacilityID,
		Status:     q.Status,
		Page:       q.Page,
		PageSize:   q.PageSize,
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
	}
	if q.DateFrom != "" {
		from, _ := time.Parse(dateLayout, q.DateFrom)
		filter.DateFrom = &from
	}
	if q.DateTo != "" {
		to, _ := time.Parse(dateLayout, q.DateTo)
		filter.DateTo = &to
	}

	switch user.Role(auth.GetUserRole(c)) {
	case user.RoleAdmin:
	case user.RoleOwner:
		filter.OwnerID = auth.GetUserID(c)
	default:
		filter.UserID = auth.GetUserID(c)
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, q.Page, q.PageSize, total))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.UpdateStatus(
		c.Request.Context(), id, booking.Status(body.Status),
		auth.GetUserID(c), user.Role(auth.GetUserRole(c)),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Availability lists the free slots of a court on a date. Public endpoint.
func (h *Handler) Availability(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var q AvailabilityRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required as YYYY-MM-DD"})
		return
	}
	date, _ := time.Parse(dateLayout, q.Date)

	slots, err := h.service.Availability(c.Request.Context(), id, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		CourtID: id,
		Date:    q.Date,
		Slots:   slots,
	})
}
