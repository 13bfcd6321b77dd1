package assessment

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
	assessments := r.Group("/assessments")

	assessments.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))

	{
		assessments.GET("", authz.Authorize(authzService, "assessment", "read"), h.GetAll)
		assessments.POST("", authz.Authorize(authzService, "assessment", "create"), h.Create)
		assessments.GET("/:id", authz.Authorize(authzService, "assessment", "read"), h.GetByID)
		assessments.DELETE("/:id", authz.Authorize(authzService, "assessment", "delete"), h.Delete)
	}
}
