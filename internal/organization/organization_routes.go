package organization

import (
	"go-orgsuite/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	orgs := r.Group("/organizations")

	orgs.Use(middleware.AuthMiddleware())

	{
		orgs.GET("", h.GetMine)
		orgs.POST("", h.Create)
		orgs.POST("/switch", h.Switch)
		orgs.GET("/:id", h.GetByID)
		orgs.PUT("/:id", h.Update)
		orgs.DELETE("/:id", h.Delete)
		orgs.GET("/:id/members", h.Members)
		orgs.POST("/:id/members", h.AddMember)
	}
}
