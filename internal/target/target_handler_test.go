package target_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-orgsuite/internal/middleware"
	"go-orgsuite/internal/target"
	"go-orgsuite/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTargetService struct {
	importFn    func(ctx context.Context, sc tenant.Scope, req target.ImportTargetRequest) (target.ImportTargetResponse, error)
	importCalls int
}

func (f *fakeTargetService) Import(ctx context.Context, sc tenant.Scope, req target.ImportTargetRequest) (target.ImportTargetResponse, error) {
	f.importCalls++
	return f.importFn(ctx, sc, req)
}

func (f *fakeTargetService) GetAll(context.Context, tenant.Scope, string) ([]target.TargetResponse, error) {
	return nil, nil
}

func (f *fakeTargetService) GetByID(context.Context, tenant.Scope, int64) (target.TargetResponse, error) {
	return target.TargetResponse{}, nil
}

func (f *fakeTargetService) Delete(context.Context, tenant.Scope, int64) error {
	return nil
}

func importRequest(sc tenant.Scope, idempKey string) *http.Request {
	body := `{"header":"Target 2026","rows":[["Perusahaan","100"]]}`
	req := httptest.NewRequest(http.MethodPost, "/targets/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if idempKey != "" {
		req.Header.Set("Idempotency-Key", idempKey)
	}
	return req.WithContext(tenant.WithScope(req.Context(), sc))
}

func TestTargetHandler_Import_Idempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sc := tenant.Scope{ActiveOrgID: uuid.New().String()}

	t.Run("success caches response and releases lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cacheKey := "idemp:/targets/import:u1:key-1"
		lockKey := cacheKey + ":lock"

		mock.Regexp().ExpectSet(cacheKey, `.*"imported":1.*`, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		svc := &fakeTargetService{
			importFn: func(context.Context, tenant.Scope, target.ImportTargetRequest) (target.ImportTargetResponse, error) {
				return target.ImportTargetResponse{Imported: 1}, nil
			},
		}
		h := target.NewHandlerWithRedis(svc, rdb)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = importRequest(sc, "key-1")
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		h.Import(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, svc.importCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replayed key served from cache without re-import", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("idemp:/targets/import::key-2").SetVal(`{"imported":2}`)

		svc := &fakeTargetService{
			importFn: func(context.Context, tenant.Scope, target.ImportTargetRequest) (target.ImportTargetResponse, error) {
				t.Fatal("import should be served from cache")
				return target.ImportTargetResponse{}, nil
			},
		}
		h := target.NewHandlerWithRedis(svc, rdb)

		r := gin.New()
		r.POST("/targets/import", middleware.Idempotency(rdb), h.Import)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, importRequest(sc, "key-2"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"imported":2`)
		assert.Zero(t, svc.importCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate rejected while lock held", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cacheKey := "idemp:/targets/import::key-3"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		svc := &fakeTargetService{}
		h := target.NewHandlerWithRedis(svc, rdb)

		r := gin.New()
		r.POST("/targets/import", middleware.Idempotency(rdb), h.Import)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, importRequest(sc, "key-3"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Zero(t, svc.importCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
