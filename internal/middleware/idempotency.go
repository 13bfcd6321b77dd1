package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-orgsuite/internal/shared/contextutil"
	"go-orgsuite/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency menahan double-submit POST yang membawa Idempotency-Key.
// Respons sukses pertama di-cache; request ganda saat proses masih
// berjalan ditolak 409 lewat lock SetNX.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := contextutil.GetUserID(c.Request.Context())
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached any
			_ = json.Unmarshal([]byte(val), &cached)
			response.Success(c, http.StatusOK, cached, nil)
			c.Abort()
			return
		}

		// Expiry pendek: kalau server crash, lock hilang sendiri
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING",
				"Permintaan Anda sedang diproses, mohon tunggu sebentar.", nil)
			c.Abort()
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}
