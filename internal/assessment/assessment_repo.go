package assessment

import (
	"context"
	"database/sql"

	"go-orgsuite/internal/tenant"
)

//go:generate mockgen -source=assessment_repo.go -destination=mock/assessment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateHeader(ctx context.Context, a *Assessment) error
	CreateItem(ctx context.Context, item *Item) error
	FindAll(ctx context.Context, sc tenant.Scope) ([]Assessment, error)
	FindByID(ctx context.Context, sc tenant.Scope, id string) (*Assessment, error)
	FindItems(ctx context.Context, assessmentID string) ([]Item, error)
	Delete(ctx context.Context, sc tenant.Scope, id string) error
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *repository) q() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) CreateHeader(ctx context.Context, a *Assessment) error {
	query := `
        INSERT INTO assessments (id, org_id, employee_id, title, period_start, period_end)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.q().ExecContext(ctx, query,
		a.ID, a.OrgID, a.EmployeeID, a.Title, a.PeriodStart, a.PeriodEnd,
	)
	return err
}

func (r *repository) CreateItem(ctx context.Context, item *Item) error {
	query := `
        INSERT INTO assessment_items (id, assessment_id, name, weight, score)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.q().ExecContext(ctx, query,
		item.ID, item.AssessmentID, item.Name, item.Weight, item.Score,
	)
	return err
}

func (r *repository) FindAll(ctx context.Context, sc tenant.Scope) ([]Assessment, error) {
	query := `
        SELECT id, org_id, employee_id, title, period_start, period_end, created_at
        FROM assessments
    `
	var args []any
	if !sc.GlobalView {
		query += ` WHERE org_id = $1`
		args = append(args, sc.ActiveOrgID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []Assessment
	for rows.Next() {
		var a Assessment
		if err := rows.Scan(&a.ID, &a.OrgID, &a.EmployeeID, &a.Title, &a.PeriodStart, &a.PeriodEnd, &a.CreatedAt); err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}
	return assessments, rows.Err()
}

func (r *repository) FindByID(ctx context.Context, sc tenant.Scope, id string) (*Assessment, error) {
	query := `
        SELECT id, org_id, employee_id, title, period_start, period_end, created_at
        FROM assessments
        WHERE id = $1
    `
	args := []any{id}
	if !sc.GlobalView {
		query += ` AND org_id = $2`
		args = append(args, sc.ActiveOrgID)
	}

	var a Assessment
	err := r.q().QueryRowContext(ctx, query, args...).
		Scan(&a.ID, &a.OrgID, &a.EmployeeID, &a.Title, &a.PeriodStart, &a.PeriodEnd, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindItems(ctx context.Context, assessmentID string) ([]Item, error) {
	query := `
        SELECT id, assessment_id, name, weight, score
        FROM assessment_items
        WHERE assessment_id = $1
        ORDER BY name ASC
    `
	rows, err := r.q().QueryContext(ctx, query, assessmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.AssessmentID, &item.Name, &item.Weight, &item.Score); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *repository) Delete(ctx context.Context, sc tenant.Scope, id string) error {
	// org_id selalu ikut di WHERE mutasi, global view tidak membebaskan
	res, err := r.q().ExecContext(ctx,
		`DELETE FROM assessments WHERE id = $1 AND org_id = $2`,
		id, sc.ActiveOrgID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
