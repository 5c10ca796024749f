package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware, adminMiddleware gin.HandlerFunc) {
	public := g.Group("/facilities")
	{
		public.GET("", h.ListPublic)
		public.GET("/:id", h.Get)
	}

	owner := g.Group("/owner/facilities")
	owner.Use(authMiddleware, ownerMiddleware)
	{
		owner.GET("", h.ListMine)
		owner.POST("", h.Create)
		owner.PATCH("/:id", h.Update)
		owner.DELETE("/:id", h.Delete)
	}

	admin := g.Group("/admin/facilities")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("/pending", h.ListPending)
		admin.PATCH("/:id/approval", h.Decide)
	}
}
