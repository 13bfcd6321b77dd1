package report

import (
	"net/http"

	"go-orgsuite/internal/shared/apperror"
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
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetDashboard(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	resp, err := h.service.GetDashboard(c.Request.Context(), sc)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("dashboard request failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
