package reminder

import (
	"context"
	"time"

	"go-orgsuite/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=reminder_repo.go -destination=mock/reminder_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, rem *Reminder) error
	FindAllByUser(ctx context.Context, sc tenant.Scope, userID string) ([]Reminder, error)
	FindByID(ctx context.Context, sc tenant.Scope, id string) (*Reminder, error)
	Update(ctx context.Context, sc tenant.Scope, rem *Reminder) error
	Delete(ctx context.Context, sc tenant.Scope, id string) error

	// FindDueUnnotified dipakai worker lintas tenant, sengaja tanpa scope.
	FindDueUnnotified(ctx context.Context, before time.Time, limit int) ([]Reminder, error)
	MarkNotified(ctx context.Context, id string, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rem *Reminder) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *repository) FindAllByUser(ctx context.Context, sc tenant.Scope, userID string) ([]Reminder, error) {
	var reminders []Reminder
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		Where("user_id = ?", userID).
		Order("due_at ASC").
		Find(&reminders).Error
	return reminders, err
}

func (r *repository) FindByID(ctx context.Context, sc tenant.Scope, id string) (*Reminder, error) {
	var rem Reminder
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		First(&rem, "id = ?", id).Error
	return &rem, err
}

func (r *repository) Update(ctx context.Context, sc tenant.Scope, rem *Reminder) error {
	res := r.db.WithContext(ctx).
		Model(&Reminder{}).
		Scopes(tenant.MutationFilter(sc)).
		Where("id = ?", rem.ID).
		Updates(map[string]interface{}{
			"title":  rem.Title,
			"notes":  rem.Notes,
			"due_at": rem.DueAt,
			"done":   rem.Done,
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
		Delete(&Reminder{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindDueUnnotified(ctx context.Context, before time.Time, limit int) ([]Reminder, error) {
	var reminders []Reminder
	err := r.db.WithContext(ctx).
		Where("due_at <= ? AND notified_at IS NULL AND done = false", before).
		Order("due_at ASC").
		Limit(limit).
		Find(&reminders).Error
	return reminders, err
}

func (r *repository) MarkNotified(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Reminder{}).
		Where("id = ?", id).
		Update("notified_at", at).Error
}
