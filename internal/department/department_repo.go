package department

import (
	"context"

	"go-orgsuite/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context, sc tenant.Scope) ([]Department, error)
	FindByID(ctx context.Context, sc tenant.Scope, id string) (*Department, error)
	Update(ctx context.Context, sc tenant.Scope, dept *Department) error
	Delete(ctx context.Context, sc tenant.Scope, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context, sc tenant.Scope) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, sc tenant.Scope, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) Update(ctx context.Context, sc tenant.Scope, dept *Department) error {
	res := r.db.WithContext(ctx).
		Model(&Department{}).
		Scopes(tenant.MutationFilter(sc)).
		Where("id = ?", dept.ID).
		Updates(map[string]interface{}{
			"name":        dept.Name,
			"description": dept.Description,
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
		Delete(&Department{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
