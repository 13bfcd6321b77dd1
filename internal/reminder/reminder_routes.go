package reminder

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
	reminders := r.Group("/reminders")

	reminders.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))

	{
		reminders.GET("", authz.Authorize(authzService, "reminder", "read"), h.GetMine)
		reminders.POST("", authz.Authorize(authzService, "reminder", "create"), h.Create)
		reminders.PUT("/:id", authz.Authorize(authzService, "reminder", "update"), h.Update)
		reminders.DELETE("/:id", authz.Authorize(authzService, "reminder", "delete"), h.Delete)
	}
}
