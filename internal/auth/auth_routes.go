package auth

import (
	"go-orgsuite/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")

	// Login/register dibatasi per IP untuk menahan brute force
	authGroup.Use(middleware.RateLimitByIP(rate.Limit(5), 10))

	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), h.Me)
	}
}
