package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.GET("/facilities/:id/reviews", h.List)
	g.POST("/facilities/:id/reviews", authMiddleware, h.Create)
	g.DELETE("/reviews/:id", authMiddleware, h.Delete)
}
