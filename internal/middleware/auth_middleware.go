package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"go-orgsuite/internal/shared/contextutil"
	"go-orgsuite/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware memvalidasi kredensial session (bearer token atau
// cookie) SEBELUM resolusi scope dimulai. Tanpa session valid,
// request berhenti di sini dengan 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			code := "INVALID_TOKEN"
			message := "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				code = "TOKEN_EXPIRED"
				message = "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, code, message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		// Role global (user|admin). Organisasi TIDAK dibawa token;
		// itu urusan scope resolver per request.
		role, _ := claims["role"].(string)
		if role == "" {
			role = "user"
		}

		c.Set("user_id", userID)
		c.Set("role", role)

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
