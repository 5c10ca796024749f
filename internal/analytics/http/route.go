package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware, adminMiddleware gin.HandlerFunc) {
	g.GET("/admin/stats", authMiddleware, adminMiddleware, h.AdminStats)

	owner := g.Group("/owner")
	owner.Use(authMiddleware, ownerMiddleware)
	{
		owner.GET("/stats", h.OwnerStats)
		owner.GET("/reports/bookings.xlsx", h.ExportBookings)
	}
}
