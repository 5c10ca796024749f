package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quickcourt/quickcourt-backend/internal/analytics"
	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service analytics.Service
}

func NewHandler(service analytics.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) AdminStats(c *gin.Context) {
	var q StatsWindowRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	stats, err := h.service.AdminStats(c.Request.Context(), q.Window(time.Now().UTC()))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAdminStatsResponse(stats))
}

func (h *Handler) OwnerStats(c *gin.Context) {
	stats, err := h.service.OwnerStats(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FacilityStatsResponse, len(stats))
	for i, s := range stats {
		items[i] = NewFacilityStatsResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{"facilities": items})
}

func (h *Handler) ExportBookings(c *gin.Context) {
	var q StatsWindowRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	w := q.Window(time.Now().UTC())

	data, err := h.service.ExportOwnerBookings(c.Request.Context(), auth.GetUserID(c), w)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("bookings_%s_%s.xlsx", w.From.Format("2006-01-02"), w.To.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
