package report

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
	reports := r.Group("/reports")

	reports.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))

	{
		reports.GET("/dashboard", authz.Authorize(authzService, "report", "read"), h.GetDashboard)
	}
}
