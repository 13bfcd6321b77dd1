package chat

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
	threads := r.Group("/threads")

	threads.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))

	{
		threads.GET("", authz.Authorize(authzService, "chat", "read"), h.GetThreads)
		threads.POST("", authz.Authorize(authzService, "chat", "create"), h.CreateThread)
		threads.DELETE("/:id", authz.Authorize(authzService, "chat", "delete"), h.DeleteThread)

		threads.GET("/:id/messages", authz.Authorize(authzService, "chat", "read"), h.GetMessages)
		threads.POST("/:id/messages", authz.Authorize(authzService, "chat", "create"), h.PostMessage)
	}

	messages := r.Group("/messages")
	messages.Use(middleware.AuthMiddleware(), middleware.ResolveScope(resolver))
	{
		messages.POST("/:messageId/vote", authz.Authorize(authzService, "chat", "update"), h.ToggleVote)
	}
}
