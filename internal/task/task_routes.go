package task

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
	tasks := r.Group("/tasks")

	tasks.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))

	{
		tasks.GET("", authz.Authorize(authzService, "task", "read"), h.GetAll)
		tasks.POST("", authz.Authorize(authzService, "task", "create"), h.Create)
		tasks.GET("/:id", authz.Authorize(authzService, "task", "read"), h.GetByID)
		tasks.PUT("/:id", authz.Authorize(authzService, "task", "update"), h.Update)
		tasks.DELETE("/:id", authz.Authorize(authzService, "task", "delete"), h.Delete)
	}
}
