package assessment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	assessmenterrors "go-orgsuite/internal/assessment/errors"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=assessment_service.go -destination=mock/assessment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, sc tenant.Scope, req CreateAssessmentRequest) (AssessmentResponse, error)
	GetAll(ctx context.Context, sc tenant.Scope) ([]AssessmentResponse, error)
	GetByID(ctx context.Context, sc tenant.Scope, id string) (AssessmentResponse, error)
	Delete(ctx context.Context, sc tenant.Scope, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("assessment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assessment.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Create menulis header + seluruh butir dalam satu transaksi: crash di
// tengah tidak boleh meninggalkan header tanpa butir.
func (s *service) Create(ctx context.Context, sc tenant.Scope, req CreateAssessmentRequest) (AssessmentResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return AssessmentResponse{}, err
	}
	if len(req.Items) == 0 {
		return AssessmentResponse{}, assessmenterrors.ErrNoItems
	}

	start, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return AssessmentResponse{}, assessmenterrors.ErrInvalidPeriod
	}
	end, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil || start.After(end) {
		return AssessmentResponse{}, assessmenterrors.ErrInvalidPeriod
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssessmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a := &Assessment{
		ID:          uuid.New(),
		OrgID:       uuid.MustParse(orgID),
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		Title:       req.Title,
		PeriodStart: start,
		PeriodEnd:   end,
	}

	if err := qtx.CreateHeader(ctx, a); err != nil {
		s.logger.Error("create assessment header failed", zap.Error(err))
		return AssessmentResponse{}, err
	}

	for _, reqItem := range req.Items {
		item := &Item{
			ID:           uuid.New(),
			AssessmentID: a.ID,
			Name:         reqItem.Name,
			Weight:       reqItem.Weight,
			Score:        reqItem.Score,
		}
		if err := qtx.CreateItem(ctx, item); err != nil {
			s.logger.Error("create assessment item failed", zap.Error(err))
			return AssessmentResponse{}, err
		}
		a.Items = append(a.Items, *item)
	}

	if err := tx.Commit(); err != nil {
		return AssessmentResponse{}, err
	}

	s.logger.Info("create assessment success",
		zap.String("assessment_id", a.ID.String()),
		zap.Int("items", len(a.Items)),
	)
	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, sc tenant.Scope) ([]AssessmentResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return nil, err
		}
	}

	assessments, err := s.repo.FindAll(ctx, sc)
	if err != nil {
		return nil, err
	}

	res := make([]AssessmentResponse, len(assessments))
	for i, a := range assessments {
		res[i] = mapToResponse(a)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, sc tenant.Scope, id string) (AssessmentResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return AssessmentResponse{}, err
		}
	}

	a, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AssessmentResponse{}, assessmenterrors.ErrAssessmentNotFound
		}
		return AssessmentResponse{}, err
	}

	items, err := s.repo.FindItems(ctx, id)
	if err != nil {
		return AssessmentResponse{}, err
	}
	a.Items = items

	return mapToResponse(*a), nil
}

func (s *service) Delete(ctx context.Context, sc tenant.Scope, id string) error {
	if _, err := sc.RequireOrg(); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return assessmenterrors.ErrAssessmentNotFound
		}
		return err
	}
	return nil
}

func mapToResponse(a Assessment) AssessmentResponse {
	resp := AssessmentResponse{
		ID:          a.ID.String(),
		OrgID:       a.OrgID.String(),
		EmployeeID:  a.EmployeeID.String(),
		Title:       a.Title,
		PeriodStart: a.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   a.PeriodEnd.Format("2006-01-02"),
	}
	for _, item := range a.Items {
		resp.Items = append(resp.Items, AssessmentItemResponse{
			ID:     item.ID.String(),
			Name:   item.Name,
			Weight: item.Weight,
			Score:  item.Score,
		})
	}
	return resp
}
