package target

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go-orgsuite/internal/shared/contextutil"
	targeterrors "go-orgsuite/internal/target/errors"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=target_service.go -destination=mock/target_service_mock.go -package=mock
type Service interface {
	Import(ctx context.Context, sc tenant.Scope, req ImportTargetRequest) (ImportTargetResponse, error)
	GetAll(ctx context.Context, sc tenant.Scope, year string) ([]TargetResponse, error)
	GetByID(ctx context.Context, sc tenant.Scope, id int64) (TargetResponse, error)
	Delete(ctx context.Context, sc tenant.Scope, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("target.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("target.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Import(ctx context.Context, sc tenant.Scope, req ImportTargetRequest) (ImportTargetResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	orgID, err := sc.RequireOrg()
	if err != nil {
		return ImportTargetResponse{}, err
	}

	targets := ExpandRows(uuid.MustParse(orgID), req.Header, req.Rows, time.Now())
	if len(targets) == 0 {
		return ImportTargetResponse{}, targeterrors.ErrEmptyImport
	}

	if err := s.repo.BulkInsert(ctx, targets); err != nil {
		s.logger.Error("target bulk insert failed",
			zap.String("request_id", rid),
			zap.Int("rows", len(targets)),
			zap.Error(err),
		)
		return ImportTargetResponse{}, err
	}

	s.logger.Info("target import success",
		zap.String("request_id", rid),
		zap.String("org_id", orgID),
		zap.Int("rows", len(targets)),
	)

	resp := ImportTargetResponse{
		Imported: len(targets),
		Targets:  make([]TargetResponse, len(targets)),
	}
	for i, t := range targets {
		resp.Targets[i] = mapToResponse(t)
	}
	return resp, nil
}

func (s *service) GetAll(ctx context.Context, sc tenant.Scope, year string) ([]TargetResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return nil, err
		}
	}

	var yearNum int
	if year != "" {
		n, err := strconv.Atoi(year)
		if err == nil {
			yearNum = n
		}
	}

	targets, err := s.repo.FindAll(ctx, sc, yearNum)
	if err != nil {
		return nil, err
	}

	res := make([]TargetResponse, len(targets))
	for i, t := range targets {
		res[i] = mapToResponse(t)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, sc tenant.Scope, id int64) (TargetResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return TargetResponse{}, err
		}
	}

	t, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return TargetResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, sc tenant.Scope, id int64) error {
	if err := s.repo.Delete(ctx, sc, id); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return targeterrors.ErrTargetNotFound
	}
	return err
}

func mapToResponse(t Target) TargetResponse {
	return TargetResponse{
		ID:        t.ID,
		OrgID:     t.OrgID.String(),
		Title:     t.Title,
		StartDate: t.StartDate.Format("2006-01-02"),
		EndDate:   t.EndDate.Format("2006-01-02"),
		Amount:    t.Amount,
	}
}
