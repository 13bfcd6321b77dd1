package program

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	programerrors "go-orgsuite/internal/program/errors"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const ProgramOptionsKeyPrefix = "programs:options:"

func GetProgramOptionsKey(orgID string) string {
	return ProgramOptionsKeyPrefix + orgID
}

//go:generate mockgen -source=program_service.go -destination=mock/program_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, sc tenant.Scope, req CreateProgramRequest) (ProgramResponse, error)
	GetAll(ctx context.Context, sc tenant.Scope, status string) ([]ProgramResponse, error)
	GetOptions(ctx context.Context, sc tenant.Scope) ([]ProgramOptionResponse, error)
	GetByID(ctx context.Context, sc tenant.Scope, id string) (ProgramResponse, error)
	Update(ctx context.Context, sc tenant.Scope, id string, req UpdateProgramRequest) (ProgramResponse, error)
	Delete(ctx context.Context, sc tenant.Scope, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("program.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("program.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func validStatus(status string) bool {
	switch status {
	case StatusDraft, StatusActive, StatusDone:
		return true
	}
	return false
}

func parseDates(startDate, endDate string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if startDate != "" {
		t, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, nil, programerrors.ErrInvalidDateRange
		}
		start = &t
	}
	if endDate != "" {
		t, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return nil, nil, programerrors.ErrInvalidDateRange
		}
		end = &t
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, nil, programerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func (s *service) Create(ctx context.Context, sc tenant.Scope, req CreateProgramRequest) (ProgramResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return ProgramResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusDraft
	}
	if !validStatus(status) {
		return ProgramResponse{}, programerrors.ErrInvalidStatus
	}

	start, end, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return ProgramResponse{}, err
	}

	prog := &Program{
		ID:          uuid.New(),
		OrgID:       uuid.MustParse(orgID),
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		StartDate:   start,
		EndDate:     end,
	}

	if err := s.repo.Create(ctx, prog); err != nil {
		s.logger.Error("create program persist failed", zap.Error(err))
		return ProgramResponse{}, err
	}

	s.invalidateOptionsCache(ctx, orgID)
	return mapToResponse(*prog), nil
}

func (s *service) GetAll(ctx context.Context, sc tenant.Scope, status string) ([]ProgramResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return nil, err
		}
	}
	if status != "" && !validStatus(status) {
		return nil, programerrors.ErrInvalidStatus
	}

	programs, err := s.repo.FindAll(ctx, sc, status)
	if err != nil {
		return nil, err
	}

	res := make([]ProgramResponse, len(programs))
	for i, p := range programs {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetOptions(ctx context.Context, sc tenant.Scope) ([]ProgramOptionResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return nil, err
	}
	cacheKey := GetProgramOptionsKey(orgID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []ProgramOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		programs, err := s.repo.FindOptions(ctx, sc)
		if err != nil {
			return nil, err
		}

		resp := make([]ProgramOptionResponse, len(programs))
		for i, p := range programs {
			resp[i] = ProgramOptionResponse{ID: p.ID.String(), Name: p.Name}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]ProgramOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, sc tenant.Scope, id string) (ProgramResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return ProgramResponse{}, err
		}
	}

	prog, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return ProgramResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*prog), nil
}

func (s *service) Update(ctx context.Context, sc tenant.Scope, id string, req UpdateProgramRequest) (ProgramResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return ProgramResponse{}, err
	}

	prog, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return ProgramResponse{}, mapRepositoryError(err)
	}

	status := req.Status
	if status == "" {
		status = prog.Status
	}
	if !validStatus(status) {
		return ProgramResponse{}, programerrors.ErrInvalidStatus
	}

	start, end, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return ProgramResponse{}, err
	}

	prog.Name = req.Name
	prog.Description = req.Description
	prog.Status = status
	prog.StartDate = start
	prog.EndDate = end

	if err := s.repo.Update(ctx, sc, prog); err != nil {
		return ProgramResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, orgID)
	return mapToResponse(*prog), nil
}

func (s *service) Delete(ctx context.Context, sc tenant.Scope, id string) error {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, sc, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, orgID)
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context, orgID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetProgramOptionsKey(orgID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate program options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return programerrors.ErrProgramNotFound
	}
	return err
}

func mapToResponse(prog Program) ProgramResponse {
	resp := ProgramResponse{
		ID:          prog.ID.String(),
		OrgID:       prog.OrgID.String(),
		Name:        prog.Name,
		Description: prog.Description,
		Status:      prog.Status,
	}
	if prog.StartDate != nil {
		resp.StartDate = prog.StartDate.Format("2006-01-02")
	}
	if prog.EndDate != nil {
		resp.EndDate = prog.EndDate.Format("2006-01-02")
	}
	return resp
}
