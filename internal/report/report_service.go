package report

import (
	"context"

	"go-orgsuite/internal/tenant"

	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	GetDashboard(ctx context.Context, sc tenant.Scope) (DashboardResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetDashboard(ctx context.Context, sc tenant.Scope) (DashboardResponse, error) {
	if sc.GlobalView {
		rows, err := s.repo.GroupedCounts(ctx)
		if err != nil {
			s.logger.Error("gagal mengambil agregat lintas organisasi", zap.Error(err))
			return DashboardResponse{}, err
		}
		return DashboardResponse{GlobalView: true, Orgs: rows}, nil
	}

	if _, err := sc.RequireOrg(); err != nil {
		return DashboardResponse{}, err
	}

	counts, err := s.repo.OrgCounts(ctx, sc)
	if err != nil {
		s.logger.Error("gagal mengambil agregat organisasi",
			zap.String("org_id", sc.ActiveOrgID),
			zap.Error(err),
		)
		return DashboardResponse{}, err
	}
	return DashboardResponse{Org: &counts}, nil
}
