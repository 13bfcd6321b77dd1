package position

import (
	"context"

	"go-orgsuite/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, pos *Position) error
	FindAll(ctx context.Context, sc tenant.Scope) ([]Position, error)
	FindByID(ctx context.Context, sc tenant.Scope, id string) (*Position, error)
	Update(ctx context.Context, sc tenant.Scope, pos *Position) error
	Delete(ctx context.Context, sc tenant.Scope, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, pos *Position) error {
	return r.db.WithContext(ctx).Create(pos).Error
}

func (r *repository) FindAll(ctx context.Context, sc tenant.Scope) ([]Position, error) {
	var positions []Position
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		Order("level DESC, name ASC").
		Find(&positions).Error
	return positions, err
}

func (r *repository) FindByID(ctx context.Context, sc tenant.Scope, id string) (*Position, error) {
	var pos Position
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		First(&pos, "id = ?", id).Error
	return &pos, err
}

func (r *repository) Update(ctx context.Context, sc tenant.Scope, pos *Position) error {
	res := r.db.WithContext(ctx).
		Model(&Position{}).
		Scopes(tenant.MutationFilter(sc)).
		Where("id = ?", pos.ID).
		Updates(map[string]interface{}{
			"name":  pos.Name,
			"level": pos.Level,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, sc tenant.Scope, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.MutationFilter(sc)).
		Delete(&Position{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
