package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	public := g.Group("/courts")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	owner := g.Group("/owner/courts")
	owner.Use(authMiddleware, ownerMiddleware)
	{
		owner.POST("", h.Create)
		owner.PATCH("/:id", h.Update)
		owner.DELETE("/:id", h.Delete)
	}
}
