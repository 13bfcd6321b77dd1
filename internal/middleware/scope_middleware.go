package middleware

import (
	"go-orgsuite/internal/domain"
	"go-orgsuite/internal/shared/apperror"
	"go-orgsuite/internal/shared/response"
	"go-orgsuite/internal/tenant"

	"github.com/gin-gonic/gin"
)

// OrgHeader adalah header opsional untuk meminta organisasi tertentu.
const OrgHeader = "X-Organization-ID"

// ResolveScope menjalankan Active-Organization Resolver untuk setiap
// request yang sudah terautentikasi, lalu menempelkan hasilnya sebagai
// value context yang immutable.
//
// Scope kosong (user tanpa membership) BUKAN error di sini; handler
// yang butuh organisasi yang menolak. Header yang menunjuk org di luar
// membership SELALU ditolak 403, tidak pernah diam-diam diabaikan.
func ResolveScope(resolver *tenant.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		role := domain.GlobalRole(c.GetString("role"))
		headerOrgID := c.GetHeader(OrgHeader)

		sc, err := resolver.Resolve(c.Request.Context(), userID, role, headerOrgID)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			c.Abort()
			return
		}

		c.Set("org_id", sc.ActiveOrgID)
		c.Set("global_view", sc.GlobalView)

		ctx := tenant.WithScope(c.Request.Context(), sc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
