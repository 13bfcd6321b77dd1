package department

import (
	"context"
	"errors"

	departmenterrors "go-orgsuite/internal/department/errors"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, sc tenant.Scope, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, sc tenant.Scope) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, sc tenant.Scope, id string) (DepartmentResponse, error)
	Update(ctx context.Context, sc tenant.Scope, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, sc tenant.Scope, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, sc tenant.Scope, req CreateDepartmentRequest) (DepartmentResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return DepartmentResponse{}, err
	}

	dept := &Department{
		ID:          uuid.New(),
		OrgID:       uuid.MustParse(orgID),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, err
	}
	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context, sc tenant.Scope) ([]DepartmentResponse, error) {
	if err := requireScope(sc); err != nil {
		return nil, err
	}

	depts, err := s.repo.FindAll(ctx, sc)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, sc tenant.Scope, id string) (DepartmentResponse, error) {
	if err := requireScope(sc); err != nil {
		return DepartmentResponse{}, err
	}

	dept, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, sc tenant.Scope, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	dept.Name = req.Name
	dept.Description = req.Description

	if err := s.repo.Update(ctx, sc, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, sc tenant.Scope, id string) error {
	if err := s.repo.Delete(ctx, sc, id); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

// requireScope membolehkan global view untuk operasi baca.
func requireScope(sc tenant.Scope) error {
	if sc.GlobalView {
		return nil
	}
	_, err := sc.RequireOrg()
	return err
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}
	return err
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID.String(),
		OrgID:       dept.OrgID.String(),
		Name:        dept.Name,
		Description: dept.Description,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
