package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}

	users := g.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/me", h.Me)
		users.PATCH("/me", h.UpdateMe)
	}

	admin := g.Group("/admin/users")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("", h.List)
		admin.PATCH("/:id", h.AdminUpdate)
	}
}
