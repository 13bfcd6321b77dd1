package auth

import (
	"net/http"
	"os"

	"go-orgsuite/internal/shared/apperror"
	"go-orgsuite/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	access, refresh, resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setAuthCookies(c, access, refresh)
	response.Success(c, http.StatusOK, gin.H{
		"user":          resp,
		"access_token":  access,
		"refresh_token": refresh,
	}, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Fallback ke cookie kalau body kosong
		if cookie, cErr := c.Cookie("refresh_token"); cErr == nil {
			req.RefreshToken = cookie
		} else {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
			return
		}
	}

	access, refresh, resp, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setAuthCookies(c, access, refresh)
	response.Success(c, http.StatusOK, gin.H{
		"user":          resp,
		"access_token":  access,
		"refresh_token": refresh,
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.GetMe(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	secure := os.Getenv("APP_ENV") == "production"
	c.SetCookie("access_token", "", -1, "/", "", secure, true)
	c.SetCookie("refresh_token", "", -1, "/", "", secure, true)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, nil)
}

func (h *Handler) setAuthCookies(c *gin.Context, access, refresh string) {
	secure := os.Getenv("APP_ENV") == "production"
	c.SetCookie("access_token", access, 15*60, "/", "", secure, true)
	c.SetCookie("refresh_token", refresh, 7*24*3600, "/", "", secure, true)
}
