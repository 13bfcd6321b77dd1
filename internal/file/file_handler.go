package file

import (
	"io"
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
	l := zap.L().Named("file.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("file.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("file request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateFolder(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	var req CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.CreateFolder(c.Request.Context(), sc, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetFolders(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	resp, err := h.service.GetFolders(c.Request.Context(), sc, c.Query("parent_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteFolder(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	if err := h.service.DeleteFolder(c.Request.Context(), sc, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Upload(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	uid := contextutil.GetUserID(c.Request.Context())
	if uid == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User tidak dikenali", nil)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File tidak ditemukan di form", err.Error())
		return
	}

	resp, err := h.service.Upload(c.Request.Context(), sc, uid, c.PostForm("folder_id"), fh)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetFiles(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	resp, err := h.service.GetFiles(c.Request.Context(), sc, c.Query("folder_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Download(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	meta, rc, err := h.service.Download(c.Request.Context(), sc, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+meta.Name+`"`)
	contentType := meta.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, rc); err != nil {
		h.logger.Error("stream file failed",
			zap.String("file_id", meta.ID.String()),
			zap.Error(err),
		)
	}
}

func (h *Handler) DeleteFile(c *gin.Context) {
	sc := tenant.FromContext(c.Request.Context())
	if err := h.service.DeleteFile(c.Request.Context(), sc, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
