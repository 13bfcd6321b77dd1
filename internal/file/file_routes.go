package file

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
	folders := r.Group("/folders")
	folders.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))
	{
		folders.GET("", authz.Authorize(authzService, "file", "read"), h.GetFolders)
		folders.POST("", authz.Authorize(authzService, "file", "create"), h.CreateFolder)
		folders.DELETE("/:id", authz.Authorize(authzService, "file", "delete"), h.DeleteFolder)
	}

	files := r.Group("/files")
	files.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))
	{
		files.GET("", authz.Authorize(authzService, "file", "read"), h.GetFiles)
		files.POST("", authz.Authorize(authzService, "file", "create"), h.Upload)
		files.GET("/:id/download", authz.Authorize(authzService, "file", "read"), h.Download)
		files.DELETE("/:id", authz.Authorize(authzService, "file", "delete"), h.DeleteFile)
	}
}
