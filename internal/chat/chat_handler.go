package chat

import (
	"net/http"

	"go-orgsuite/internal/shared/apperror"
	"go-orgsuite/internal/shared/contextutil"
	"go-orgsuite/internal/shared/response"
	"go-orgsuite/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("chat.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("chat request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) userID(c *gin.Context) (string, bool) {
	uid := contextutil.GetUserID(c.Request.Context())
	if uid == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User tidak dikenali", nil)
		return "", false
	}
	return uid, true
}

func (h *Handler) CreateThread(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	var req CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.CreateThread(c.Request.Context(), sc, uid, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetThreads(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	resp, err := h.service.GetThreads(c.Request.Context(), sc)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteThread(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	if err := h.service.DeleteThread(c.Request.Context(), sc, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) PostMessage(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.PostMessage(c.Request.Context(), sc, uid, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetMessages(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	resp, err := h.service.GetMessages(c.Request.Context(), sc, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ToggleVote(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	var req ToggleVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.ToggleVote(c.Request.Context(), sc, uid, c.Param("messageId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
