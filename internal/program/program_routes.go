package program

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
	programs := r.Group("/programs")

	programs.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))

	{
		programs.GET("", authz.Authorize(authzService, "program", "read"), h.GetAll)
		programs.GET("/options", authz.Authorize(authzService, "program", "read"), h.GetOptions)
		programs.POST("", authz.Authorize(authzService, "program", "create"), h.Create)
		programs.GET("/:id", authz.Authorize(authzService, "program", "read"), h.GetByID)
		programs.PUT("/:id", authz.Authorize(authzService, "program", "update"), h.Update)
		programs.DELETE("/:id", authz.Authorize(authzService, "program", "delete"), h.Delete)
	}
}
