package employee

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
	employees := r.Group("/employees")

	employees.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))

	{
		employees.GET("", authz.Authorize(authzService, "employee", "read"), h.GetAll)
		employees.GET("/options", authz.Authorize(authzService, "employee", "read"), h.GetOptions)
		employees.POST("", authz.Authorize(authzService, "employee", "create"), h.Create)
		employees.GET("/:id", authz.Authorize(authzService, "employee", "read"), h.GetByID)
		employees.PUT("/:id", authz.Authorize(authzService, "employee", "update"), h.Update)
		employees.DELETE("/:id", authz.Authorize(authzService, "employee", "delete"), h.Delete)
	}
}
