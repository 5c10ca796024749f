package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	g.GET("/facilities/:id/photos", h.List)
	g.GET("/photos/:id/file", h.File)

	g.POST("/owner/facilities/:id/photos", authMiddleware, ownerMiddleware, h.Upload)
	g.DELETE("/photos/:id", authMiddleware, h.Delete)
}
