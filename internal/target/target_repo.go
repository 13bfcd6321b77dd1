package target

import (
	"context"

	"go-orgsuite/internal/shared/sequence"
	"go-orgsuite/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=target_repo.go -destination=mock/target_repo_mock.go -package=mock
type Repository interface {
	BulkInsert(ctx context.Context, targets []Target) error
	FindAll(ctx context.Context, sc tenant.Scope, year int) ([]Target, error)
	FindByID(ctx context.Context, sc tenant.Scope, id int64) (*Target, error)
	Delete(ctx context.Context, sc tenant.Scope, id int64) error
}

type repository struct {
	db  *gorm.DB
	seq sequence.Repository
}

func NewRepository(db *gorm.DB, seq sequence.Repository) Repository {
	return &repository{db: db, seq: seq}
}

// BulkInsert menulis hasil ekspansi sekali jalan. Kalau kena 23505
// karena sequence tertinggal, counter di-resync dan insert diulang
// tepat sekali.
func (r *repository) BulkInsert(ctx context.Context, targets []Target) error {
	return sequence.InsertWithRepair(ctx, r.seq, "targets", "id", func() error {
		return r.db.WithContext(ctx).Create(&targets).Error
	})
}

func (r *repository) FindAll(ctx context.Context, sc tenant.Scope, year int) ([]Target, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Filter(sc))
	if year > 0 {
		q = q.Where("EXTRACT(YEAR FROM start_date) = ?", year)
	}

	var targets []Target
	err := q.Order("start_date ASC, id ASC").Find(&targets).Error
	return targets, err
}

func (r *repository) FindByID(ctx context.Context, sc tenant.Scope, id int64) (*Target, error) {
	var t Target
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) Delete(ctx context.Context, sc tenant.Scope, id int64) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.MutationFilter(sc)).
		Delete(&Target{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
