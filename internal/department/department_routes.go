package department

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
	departments := r.Group("/departments")

	departments.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))

	{
		departments.GET("", authz.Authorize(authzService, "department", "read"), h.GetAll)
		departments.POST("", authz.Authorize(authzService, "department", "create"), h.Create)
		departments.GET("/:id", authz.Authorize(authzService, "department", "read"), h.GetByID)
		departments.PUT("/:id", authz.Authorize(authzService, "department", "update"), h.Update)
		departments.DELETE("/:id", authz.Authorize(authzService, "department", "delete"), h.Delete)
	}
}
