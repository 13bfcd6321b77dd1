package report

import (
	"context"

	"go-orgsuite/internal/program"
	"go-orgsuite/internal/task"
	"go-orgsuite/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	OrgCounts(ctx context.Context, sc tenant.Scope) (OrgDashboardResponse, error)
	GroupedCounts(ctx context.Context) ([]GlobalDashboardRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) OrgCounts(ctx context.Context, sc tenant.Scope) (OrgDashboardResponse, error) {
	resp := OrgDashboardResponse{OrgID: sc.ActiveOrgID}

	if err := r.db.WithContext(ctx).
		Model(&task.Task{}).
		Scopes(tenant.Filter(sc)).
		Count(&resp.Tasks).Error; err != nil {
		return resp, err
	}

	if err := r.db.WithContext(ctx).
		Model(&task.Task{}).
		Scopes(tenant.Filter(sc)).
		Where("status <> ?", task.StatusDone).
		Count(&resp.OpenTasks).Error; err != nil {
		return resp, err
	}

	if err := r.db.WithContext(ctx).
		Model(&program.Program{}).
		Scopes(tenant.Filter(sc)).
		Count(&resp.Programs).Error; err != nil {
		return resp, err
	}

	if err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(tenant.Filter(sc)).
		Count(&resp.Employees).Error; err != nil {
		return resp, err
	}

	if err := r.db.WithContext(ctx).
		Table("targets").
		Scopes(tenant.Filter(sc)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&resp.TargetAmount).Error; err != nil {
		return resp, err
	}

	if err := r.db.WithContext(ctx).
		Table("outbox_events").
		Where("status = ?", "pending").
		Count(&resp.PendingEvents).Error; err != nil {
		return resp, err
	}

	return resp, nil
}

// GroupedCounts melayani global view: agregat per organisasi, tanpa
// filter org_id.
func (r *repository) GroupedCounts(ctx context.Context) ([]GlobalDashboardRow, error) {
	var rows []GlobalDashboardRow
	err := r.db.WithContext(ctx).
		Table("organizations o").
		Select(`
            o.id::text AS org_id,
            o.name AS org_name,
            (SELECT COUNT(*) FROM tasks t WHERE t.org_id = o.id AND t.deleted_at IS NULL) AS tasks,
            (SELECT COUNT(*) FROM programs p WHERE p.org_id = o.id AND p.deleted_at IS NULL) AS programs,
            (SELECT COUNT(*) FROM employees e WHERE e.org_id = o.id) AS employees,
            (SELECT COALESCE(SUM(t.amount), 0) FROM targets t WHERE t.org_id = o.id) AS target_amount
        `).
		Order("o.name ASC").
		Scan(&rows).Error
	return rows, err
}
