package authz

import (
	"go-orgsuite/internal/domain"
	"go-orgsuite/internal/shared/apperror"
	"go-orgsuite/internal/shared/response"
	"go-orgsuite/internal/tenant"

	"github.com/gin-gonic/gin"
)

// Authorize menolak request yang role organisasinya tidak boleh
// melakukan resource/action ini. Wajib dipasang SETELAH AuthMiddleware
// dan ResolveScope.
func Authorize(svc Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		globalRole := domain.GlobalRole(c.GetString("role"))

		sc := tenant.FromContext(c.Request.Context())
		orgID, err := sc.RequireOrg()
		if err != nil && !globalRole.IsAdmin() {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			c.Abort()
			return
		}

		allowed, err := svc.Enforce(c.Request.Context(), userID, globalRole, orgID, resource, action)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c,
				apperror.ErrForbidden.HTTPStatus,
				apperror.ErrForbidden.Code,
				apperror.ErrForbidden.Message,
				gin.H{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
