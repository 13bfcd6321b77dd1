package position

import (
	"context"
	"errors"

	positionerrors "go-orgsuite/internal/position/errors"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, sc tenant.Scope, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context, sc tenant.Scope) ([]PositionResponse, error)
	GetByID(ctx context.Context, sc tenant.Scope, id string) (PositionResponse, error)
	Update(ctx context.Context, sc tenant.Scope, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, sc tenant.Scope, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, sc tenant.Scope, req CreatePositionRequest) (PositionResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return PositionResponse{}, err
	}

	pos := &Position{
		ID:           uuid.New(),
		OrgID:        uuid.MustParse(orgID),
		DepartmentID: uuidPtr(req.DepartmentID),
		Name:         req.Name,
		Level:        req.Level,
	}

	if err := s.repo.Create(ctx, pos); err != nil {
		return PositionResponse{}, err
	}
	return mapToResponse(*pos), nil
}

func (s *service) GetAll(ctx context.Context, sc tenant.Scope) ([]PositionResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return nil, err
		}
	}

	positions, err := s.repo.FindAll(ctx, sc)
	if err != nil {
		return nil, err
	}

	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, sc tenant.Scope, id string) (PositionResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return PositionResponse{}, err
		}
	}

	pos, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*pos), nil
}

func (s *service) Update(ctx context.Context, sc tenant.Scope, id string, req UpdatePositionRequest) (PositionResponse, error) {
	pos, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	pos.Name = req.Name
	pos.Level = req.Level
	pos.DepartmentID = uuidPtr(req.DepartmentID)

	if err := s.repo.Update(ctx, sc, pos); err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*pos), nil
}

func (s *service) Delete(ctx context.Context, sc tenant.Scope, id string) error {
	if err := s.repo.Delete(ctx, sc, id); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return positionerrors.ErrPositionNotFound
	}
	return err
}

func mapToResponse(pos Position) PositionResponse {
	resp := PositionResponse{
		ID:    pos.ID.String(),
		OrgID: pos.OrgID.String(),
		Name:  pos.Name,
		Level: pos.Level,
	}
	if pos.DepartmentID != nil {
		resp.DepartmentID = pos.DepartmentID.String()
	}
	return resp
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}
