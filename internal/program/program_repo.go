package program

import (
	"context"

	"go-orgsuite/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=program_repo.go -destination=mock/program_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, prog *Program) error
	FindAll(ctx context.Context, sc tenant.Scope, status string) ([]Program, error)
	FindOptions(ctx context.Context, sc tenant.Scope) ([]Program, error)
	FindByID(ctx context.Context, sc tenant.Scope, id string) (*Program, error)
	Update(ctx context.Context, sc tenant.Scope, prog *Program) error
	Delete(ctx context.Context, sc tenant.Scope, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, prog *Program) error {
	return r.db.WithContext(ctx).Create(prog).Error
}

func (r *repository) FindAll(ctx context.Context, sc tenant.Scope, status string) ([]Program, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Filter(sc))
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var programs []Program
	err := q.Order("created_at DESC").Find(&programs).Error
	return programs, err
}

func (r *repository) FindOptions(ctx context.Context, sc tenant.Scope) ([]Program, error) {
	var programs []Program
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		Select("id", "org_id", "name").
		Where("status <> ?", StatusDone).
		Order("name ASC").
		Find(&programs).Error
	return programs, err
}

func (r *repository) FindByID(ctx context.Context, sc tenant.Scope, id string) (*Program, error) {
	var prog Program
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		First(&prog, "id = ?", id).Error
	return &prog, err
}

func (r *repository) Update(ctx context.Context, sc tenant.Scope, prog *Program) error {
	res := r.db.WithContext(ctx).
		Model(&Program{}).
		Scopes(tenant.MutationFilter(sc)).
		Where("id = ?", prog.ID).
		Updates(map[string]interface{}{
			"name":        prog.Name,
			"description": prog.Description,
			"status":      prog.Status,
			"start_date":  prog.StartDate,
			"end_date":    prog.EndDate,
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
		Delete(&Program{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
