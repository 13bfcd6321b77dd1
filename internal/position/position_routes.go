package position

import (
	"go-orgsuite/internal/authz"
	"go-orgsuite/internal/middleware"
	"go-orgsuite/internal/tenant"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	resolver *tenant.Resolver,
	authzService authz.Service,
) {
	positions := r.Group("/positions")

	positions.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))

	{
		positions.GET("", authz.Authorize(authzService, "position", "read"), h.GetAll)
		positions.POST("", authz.Authorize(authzService, "position", "create"), h.Create)
		positions.GET("/:id", authz.Authorize(authzService, "position", "read"), h.GetByID)
		positions.PUT("/:id", authz.Authorize(authzService, "position", "update"), h.Update)
		positions.DELETE("/:id", authz.Authorize(authzService, "position", "delete"), h.Delete)
	}
}
