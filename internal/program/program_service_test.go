package program_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-orgsuite/internal/program"
	programerrors "go-orgsuite/internal/program/errors"
	"go-orgsuite/internal/tenant"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeProgramRepo struct {
	CreateFn      func(ctx context.Context, prog *program.Program) error
	FindAllFn     func(ctx context.Context, sc tenant.Scope, status string) ([]program.Program, error)
	FindOptionsFn func(ctx context.Context, sc tenant.Scope) ([]program.Program, error)
	FindByIDFn    func(ctx context.Context, sc tenant.Scope, id string) (*program.Program, error)
	UpdateFn      func(ctx context.Context, sc tenant.Scope, prog *program.Program) error
	DeleteFn      func(ctx context.Context, sc tenant.Scope, id string) error

	findOptionsCalls int
}

func (f *fakeProgramRepo) Create(ctx context.Context, prog *program.Program) error {
	return f.CreateFn(ctx, prog)
}
func (f *fakeProgramRepo) FindAll(ctx context.Context, sc tenant.Scope, status string) ([]program.Program, error) {
	return f.FindAllFn(ctx, sc, status)
}
func (f *fakeProgramRepo) FindOptions(ctx context.Context, sc tenant.Scope) ([]program.Program, error) {
	f.findOptionsCalls++
	return f.FindOptionsFn(ctx, sc)
}
func (f *fakeProgramRepo) FindByID(ctx context.Context, sc tenant.Scope, id string) (*program.Program, error) {
	return f.FindByIDFn(ctx, sc, id)
}
func (f *fakeProgramRepo) Update(ctx context.Context, sc tenant.Scope, prog *program.Program) error {
	return f.UpdateFn(ctx, sc, prog)
}
func (f *fakeProgramRepo) Delete(ctx context.Context, sc tenant.Scope, id string) error {
	return f.DeleteFn(ctx, sc, id)
}

func TestProgramService_Create(t *testing.T) {
	orgID := uuid.New().String()
	sc := tenant.Scope{ActiveOrgID: orgID}

	t.Run("defaults to draft and invalidates options cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(program.GetProgramOptionsKey(orgID)).SetVal(1)

		repo := &fakeProgramRepo{
			CreateFn: func(ctx context.Context, prog *program.Program) error {
				assert.Equal(t, orgID, prog.OrgID.String())
				assert.Equal(t, program.StatusDraft, prog.Status)
				return nil
			},
		}
		svc := program.NewService(repo, rdb)

		resp, err := svc.Create(context.Background(), sc, program.CreateProgramRequest{
			Name:      "Beasiswa 2026",
			StartDate: "2026-01-01",
			EndDate:   "2026-12-31",
		})

		assert.NoError(t, err)
		assert.Equal(t, program.StatusDraft, resp.Status)
		assert.Equal(t, "2026-01-01", resp.StartDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc := program.NewService(&fakeProgramRepo{}, nil)
		_, err := svc.Create(context.Background(), sc, program.CreateProgramRequest{
			Name:   "Beasiswa",
			Status: "archived",
		})
		assert.ErrorIs(t, err, programerrors.ErrInvalidStatus)
	})

	t.Run("start after end rejected", func(t *testing.T) {
		svc := program.NewService(&fakeProgramRepo{}, nil)
		_, err := svc.Create(context.Background(), sc, program.CreateProgramRequest{
			Name:      "Beasiswa",
			StartDate: "2026-12-31",
			EndDate:   "2026-01-01",
		})
		assert.ErrorIs(t, err, programerrors.ErrInvalidDateRange)
	})
}

func TestProgramService_GetOptions(t *testing.T) {
	orgID := uuid.New().String()
	sc := tenant.Scope{ActiveOrgID: orgID}
	cacheKey := program.GetProgramOptionsKey(orgID)

	t.Run("cache hit skips repository", func(t *testing.T) {
		cached := []program.ProgramOptionResponse{{ID: uuid.New().String(), Name: "Beasiswa 2026"}}
		payload, _ := json.Marshal(cached)

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).SetVal(string(payload))

		repo := &fakeProgramRepo{}
		svc := program.NewService(repo, rdb)

		resp, err := svc.GetOptions(context.Background(), sc)

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.Zero(t, repo.findOptionsCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss loads from repository and fills cache", func(t *testing.T) {
		prog := program.Program{ID: uuid.New(), OrgID: uuid.MustParse(orgID), Name: "Santunan Yatim"}

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.Regexp().ExpectSet(cacheKey, `.*Santunan Yatim.*`, 1*time.Hour).SetVal("OK")

		repo := &fakeProgramRepo{
			FindOptionsFn: func(ctx context.Context, sc tenant.Scope) ([]program.Program, error) {
				return []program.Program{prog}, nil
			},
		}
		svc := program.NewService(repo, rdb)

		resp, err := svc.GetOptions(context.Background(), sc)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, 1, repo.findOptionsCalls)
	})

	t.Run("missing scope rejected", func(t *testing.T) {
		svc := program.NewService(&fakeProgramRepo{}, nil)
		_, err := svc.GetOptions(context.Background(), tenant.Scope{})
		assert.Error(t, err)
	})
}

func TestProgramService_GetByID(t *testing.T) {
	orgID := uuid.New().String()
	sc := tenant.Scope{ActiveOrgID: orgID}

	t.Run("missing row maps to not found", func(t *testing.T) {
		repo := &fakeProgramRepo{
			FindByIDFn: func(ctx context.Context, sc tenant.Scope, id string) (*program.Program, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := program.NewService(repo, nil)

		_, err := svc.GetByID(context.Background(), sc, uuid.New().String())
		assert.ErrorIs(t, err, programerrors.ErrProgramNotFound)
	})
}

func TestProgramService_Update(t *testing.T) {
	orgID := uuid.New().String()
	sc := tenant.Scope{ActiveOrgID: orgID}
	existing := program.Program{
		ID:     uuid.New(),
		OrgID:  uuid.MustParse(orgID),
		Name:   "Beasiswa 2026",
		Status: program.StatusDraft,
	}

	t.Run("empty status keeps current one and invalidates cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(program.GetProgramOptionsKey(orgID)).SetVal(1)

		repo := &fakeProgramRepo{
			FindByIDFn: func(ctx context.Context, sc tenant.Scope, id string) (*program.Program, error) {
				p := existing
				return &p, nil
			},
			UpdateFn: func(ctx context.Context, sc tenant.Scope, prog *program.Program) error {
				assert.Equal(t, program.StatusDraft, prog.Status)
				return nil
			},
		}
		svc := program.NewService(repo, rdb)

		resp, err := svc.Update(context.Background(), sc, existing.ID.String(), program.UpdateProgramRequest{
			Name: "Beasiswa 2026 Batch 2",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Beasiswa 2026 Batch 2", resp.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid status rejected before persist", func(t *testing.T) {
		repo := &fakeProgramRepo{
			FindByIDFn: func(ctx context.Context, sc tenant.Scope, id string) (*program.Program, error) {
				p := existing
				return &p, nil
			},
			UpdateFn: func(ctx context.Context, sc tenant.Scope, prog *program.Program) error {
				t.Fatal("update should not be reached")
				return nil
			},
		}
		svc := program.NewService(repo, nil)

		_, err := svc.Update(context.Background(), sc, existing.ID.String(), program.UpdateProgramRequest{
			Name:   "Beasiswa",
			Status: "archived",
		})
		assert.ErrorIs(t, err, programerrors.ErrInvalidStatus)
	})
}

func TestProgramService_Delete(t *testing.T) {
	orgID := uuid.New().String()
	sc := tenant.Scope{ActiveOrgID: orgID}

	t.Run("invalidates options cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(program.GetProgramOptionsKey(orgID)).SetVal(1)

		repo := &fakeProgramRepo{
			DeleteFn: func(ctx context.Context, sc tenant.Scope, id string) error { return nil },
		}
		svc := program.NewService(repo, rdb)

		err := svc.Delete(context.Background(), sc, uuid.New().String())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		repo := &fakeProgramRepo{
			DeleteFn: func(ctx context.Context, sc tenant.Scope, id string) error {
				return gorm.ErrRecordNotFound
			},
		}
		svc := program.NewService(repo, nil)

		err := svc.Delete(context.Background(), sc, uuid.New().String())
		assert.ErrorIs(t, err, programerrors.ErrProgramNotFound)
	})
}
