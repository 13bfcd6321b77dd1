package middleware

import (
	"go-orgsuite/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger menempelkan logger ber-request_id ke context supaya
// layer service/repo bisa ambil via contextutil tanpa tahu Gin.
// Jalan setelah RequestID.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		reqLogger := logger.With(
			zap.String("request_id", contextutil.GetRequestID(ctx)),
		)

		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))
		c.Next()
	}
}
