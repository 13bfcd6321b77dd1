package employee

import (
	"context"
	"errors"

	"go-orgsuite/internal/position"
	"go-orgsuite/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, sc tenant.Scope) ([]Employee, error)
	FindOptions(ctx context.Context, sc tenant.Scope) ([]Employee, error)
	FindByID(ctx context.Context, sc tenant.Scope, id string) (*Employee, error)
	Update(ctx context.Context, sc tenant.Scope, empl *Employee) error
	Delete(ctx context.Context, sc tenant.Scope, id string) error

	// PositionDepartmentID mengembalikan department id dari posisi.
	// found == false kalau posisi bukan milik org di scope.
	PositionDepartmentID(ctx context.Context, sc tenant.Scope, positionID string) (deptID string, found bool, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, sc tenant.Scope) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		Preload("Department").
		Preload("Position").
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindOptions(ctx context.Context, sc tenant.Scope) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		Select("id", "org_id", "full_name", "email").
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, sc tenant.Scope, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Filter(sc)).
		Preload("Department").
		Preload("Position").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) Update(ctx context.Context, sc tenant.Scope, empl *Employee) error {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.MutationFilter(sc)).
		Where("id = ?", empl.ID).
		Updates(map[string]interface{}{
			"full_name":     empl.FullName,
			"email":         empl.Email,
			"phone":         empl.Phone,
			"position_id":   empl.PositionID,
			"department_id": empl.DepartmentID,
			"join_date":     empl.JoinDate,
			"status":        empl.Status,
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
		Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) PositionDepartmentID(ctx context.Context, sc tenant.Scope, positionID string) (string, bool, error) {
	var pos position.Position
	err := r.db.WithContext(ctx).
		Scopes(tenant.MutationFilter(sc)).
		First(&pos, "id = ?", positionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	if pos.DepartmentID == nil {
		return "", true, nil
	}
	return pos.DepartmentID.String(), true, nil
}
