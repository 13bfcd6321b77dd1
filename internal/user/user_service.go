package user

import (
	"context"
	"errors"
	"strings"

	"go-orgsuite/internal/domain"
	usererrors "go-orgsuite/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)
	GetAll(ctx context.Context, actorRole domain.GlobalRole) ([]UserResponse, error)
	Delete(ctx context.Context, actorRole domain.GlobalRole, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetProfile(ctx context.Context, userID string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if req.FullName != "" {
		u.FullName = req.FullName
	}
	if req.Email != "" {
		u.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update profile failed", zap.String("user_id", userID), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context, actorRole domain.GlobalRole) ([]UserResponse, error) {
	if !actorRole.IsAdmin() {
		return nil, usererrors.ErrAdminOnly
	}

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, mapToResponse(u))
	}
	return result, nil
}

// Delete adalah hard delete baris user; jalur normal tidak memakainya.
func (s *service) Delete(ctx context.Context, actorRole domain.GlobalRole, id string) error {
	if !actorRole.IsAdmin() {
		return usererrors.ErrAdminOnly
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("user deleted", zap.String("user_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usererrors.ErrEmailAlreadyExists
	}
	return err
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
