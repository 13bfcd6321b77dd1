package user

import (
	"go-orgsuite/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	users := r.Group("/users")

	users.Use(middleware.AuthMiddleware())

	{
		users.GET("/me", h.GetProfile)
		users.PUT("/me", h.UpdateProfile)
		users.GET("", h.GetAll)
		users.DELETE("/:id", h.Delete)
	}
}
