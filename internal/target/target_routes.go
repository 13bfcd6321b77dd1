package target

import (
	"go-orgsuite/internal/authz"
	"go-orgsuite/internal/middleware"
	"go-orgsuite/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	resolver *tenant.Resolver,
	authzService authz.Service,
	rdb ...*redis.Client,
) {
	targets := r.Group("/targets")

	targets.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))

	importHandlers := []gin.HandlerFunc{authz.Authorize(authzService, "target", "import")}
	// Import rentan double-submit dari retry spreadsheet upload
	if len(rdb) > 0 && rdb[0] != nil {
		importHandlers = append(importHandlers, middleware.Idempotency(rdb[0]))
	}
	importHandlers = append(importHandlers, h.Import)

	{
		targets.GET("", authz.Authorize(authzService, "target", "read"), h.GetAll)
		targets.GET("/:id", authz.Authorize(authzService, "target", "read"), h.GetByID)
		targets.POST("/import", importHandlers...)
		targets.DELETE("/:id", authz.Authorize(authzService, "target", "delete"), h.Delete)
	}
}
