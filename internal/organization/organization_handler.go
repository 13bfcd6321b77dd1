package organization

import (
	"net/http"

	"go-orgsuite/internal/domain"
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
	l := zap.L().Named("organization.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("organization request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func actor(c *gin.Context) (string, domain.GlobalRole) {
	return c.GetString("user_id"), domain.GlobalRole(c.GetString("role"))
}

func (h *Handler) Create(c *gin.Context) {
	userID, _ := actor(c)
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	userID, role := actor(c)
	resp, err := h.service.GetMine(c.Request.Context(), userID, role)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	userID, role := actor(c)
	resp, err := h.service.GetByID(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	userID, role := actor(c)
	var req UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), userID, role, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	userID, role := actor(c)
	if err := h.service.Delete(c.Request.Context(), userID, role, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Members(c *gin.Context) {
	userID, role := actor(c)
	resp, err := h.service.Members(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddMember(c *gin.Context) {
	userID, role := actor(c)
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	if err := h.service.AddMember(c.Request.Context(), userID, role, c.Param("id"), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"added": true}, nil)
}

// Switch menulis pointer organisasi aktif di session.
// Request berikutnya akan ter-resolve ke org ini (prioritas ke-2).
func (h *Handler) Switch(c *gin.Context) {
	userID, role := actor(c)
	var req SwitchOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	if err := h.service.Switch(c.Request.Context(), userID, role, req.OrganizationID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"active_organization_id": req.OrganizationID}, nil)
}
