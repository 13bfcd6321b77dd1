package authz

import (
	"context"

	"go-orgsuite/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authz_service.go -destination=mock/authz_service_mock.go -package=mock

// RoleSource membaca role user di satu organisasi.
// Diimplementasikan oleh organization.Repository.
type RoleSource interface {
	RoleInOrg(ctx context.Context, userID, orgID string) (domain.Role, error)
}

type Service interface {
	Enforce(ctx context.Context, userID string, globalRole domain.GlobalRole, orgID, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	roles    RoleSource
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, roles RoleSource, logger ...*zap.Logger) Service {
	l := zap.L().Named("authz.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authz.service")
	}
	return &service{enforcer: enforcer, roles: roles, logger: l}
}

func (s *service) Enforce(ctx context.Context, userID string, globalRole domain.GlobalRole, orgID, resource, action string) (bool, error) {
	// Admin global lolos semua check resource/action
	if globalRole.IsAdmin() {
		return true, nil
	}

	role, err := s.roles.RoleInOrg(ctx, userID, orgID)
	if err != nil {
		return false, err
	}
	if role == "" {
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(string(role), resource, action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("user_id", userID),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}
	return allowed, nil
}
