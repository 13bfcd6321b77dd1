package task

import (
	"context"

	"go-orgsuite/internal/tenant"

	"gorm.io/gorm"
)

// ListFilter adalah filter eksplisit di luar scoping org.
type ListFilter struct {
	Status     string
	AssigneeID string
	ProgramID  string
}

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Task) error
	FindAll(ctx context.Context, sc tenant.Scope, filter ListFilter) ([]Task, error)
	FindByID(ctx context.Context, sc tenant.Scope, id string) (*Task, error)
	Update(ctx context.Context, sc tenant.Scope, t *Task) error
	Delete(ctx context.Context, sc tenant.Scope, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context, sc tenant.Scope, filter ListFilter) ([]Task, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Filter(sc))
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.AssigneeID != "" {
		q = q.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.ProgramID != "" {
		q = q.Where("program_id = ?", filter.ProgramID)
	}

	var tasks []Task
	err := q.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindByID(ctx context.Context, sc tenant.Scope, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		First(&t, "id = ?", id).Error
	return &t, err
}

// Update menaruh filter org di WHERE mutasi, bukan cuma di fetch awal.
// Menebak primary key milik tenant lain berujung not-found.
func (r *repository) Update(ctx context.Context, sc tenant.Scope, t *Task) error {
	res := r.db.WithContext(ctx).
		Model(&Task{}).
		Scopes(tenant.MutationFilter(sc)).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"program_id":  t.ProgramID,
			"assignee_id": t.AssigneeID,
			"title":       t.Title,
			"description": t.Description,
			"status":      t.Status,
			"due_date":    t.DueDate,
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
		Delete(&Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
