package position_test

import (
	"context"
	"testing"

	"go-orgsuite/internal/position"
	positionerrors "go-orgsuite/internal/position/errors"
	"go-orgsuite/internal/shared/apperror"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePositionRepo struct {
	CreateFn   func(ctx context.Context, pos *position.Position) error
	FindAllFn  func(ctx context.Context, sc tenant.Scope) ([]position.Position, error)
	FindByIDFn func(ctx context.Context, sc tenant.Scope, id string) (*position.Position, error)
	UpdateFn   func(ctx context.Context, sc tenant.Scope, pos *position.Position) error
	DeleteFn   func(ctx context.Context, sc tenant.Scope, id string) error
}

func (f *fakePositionRepo) Create(ctx context.Context, pos *position.Position) error {
	return f.CreateFn(ctx, pos)
}
func (f *fakePositionRepo) FindAll(ctx context.Context, sc tenant.Scope) ([]position.Position, error) {
	return f.FindAllFn(ctx, sc)
}
func (f *fakePositionRepo) FindByID(ctx context.Context, sc tenant.Scope, id string) (*position.Position, error) {
	return f.FindByIDFn(ctx, sc, id)
}
func (f *fakePositionRepo) Update(ctx context.Context, sc tenant.Scope, pos *position.Position) error {
	return f.UpdateFn(ctx, sc, pos)
}
func (f *fakePositionRepo) Delete(ctx context.Context, sc tenant.Scope, id string) error {
	return f.DeleteFn(ctx, sc, id)
}

func TestPositionService_Create(t *testing.T) {
	orgID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo := &fakePositionRepo{
			CreateFn: func(ctx context.Context, pos *position.Position) error {
				assert.Equal(t, orgID, pos.OrgID.String())
				return nil
			},
		}

		svc := position.NewService(repo)
		resp, err := svc.Create(context.Background(), tenant.Scope{ActiveOrgID: orgID}, position.CreatePositionRequest{Name: "Koordinator", Level: 3})

		assert.NoError(t, err)
		assert.Equal(t, "Koordinator", resp.Name)
		assert.Equal(t, 3, resp.Level)
	})

	t.Run("missing scope rejected", func(t *testing.T) {
		svc := position.NewService(&fakePositionRepo{})
		_, err := svc.Create(context.Background(), tenant.Scope{}, position.CreatePositionRequest{Name: "Koordinator"})

		assert.ErrorIs(t, err, apperror.ErrMissingScope)
	})
}

func TestPositionService_Update(t *testing.T) {
	orgID := uuid.New().String()

	t.Run("not found", func(t *testing.T) {
		repo := &fakePositionRepo{
			FindByIDFn: func(ctx context.Context, sc tenant.Scope, id string) (*position.Position, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := position.NewService(repo)
		_, err := svc.Update(context.Background(), tenant.Scope{ActiveOrgID: orgID}, uuid.New().String(), position.UpdatePositionRequest{Name: "Staf"})

		assert.ErrorIs(t, err, positionerrors.ErrPositionNotFound)
	})
}
