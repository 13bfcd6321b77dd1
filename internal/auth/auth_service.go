package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "go-orgsuite/internal/auth/errors"
	"go-orgsuite/internal/organization"
	"go-orgsuite/internal/user"
	usererrors "go-orgsuite/internal/user/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	users  user.Repository
	orgs   organization.Service
	logger *zap.Logger
}

func NewService(users user.Repository, orgs organization.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, orgs: orgs, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &user.User{
		ID:       uuid.New(),
		FullName: req.FullName,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		Role:     "user",
		IsActive: true,
	}

	if err := s.users.Create(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return AuthResponse{}, usererrors.ErrEmailAlreadyExists
		}
		s.logger.Error("register persist user failed", zap.String("email", u.Email), zap.Error(err))
		return AuthResponse{}, err
	}

	resp := AuthResponse{
		ID:       u.ID.String(),
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}

	// Bootstrap organisasi pertama (opsional). User tanpa org tetap
	// valid; request-nya akan jalan dengan scope kosong.
	if req.OrganizationName != "" {
		slug := req.OrganizationSlug
		if slug == "" {
			slug = slugify(req.OrganizationName)
		}
		org, err := s.orgs.Create(ctx, u.ID.String(), organization.CreateOrganizationRequest{
			Name: req.OrganizationName,
			Slug: slug,
		})
		if err != nil {
			s.logger.Error("register bootstrap organization failed",
				zap.String("user_id", u.ID.String()),
				zap.Error(err),
			)
			return AuthResponse{}, err
		}
		resp.OrganizationID = org.ID
	}

	s.logger.Info("user registered", zap.String("user_id", u.ID.String()))
	return resp, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !u.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrAccountInactive
	}

	accessToken, err := s.generateToken(u.ID.String(), u.Role, 15*time.Minute)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(u.ID.String(), u.Role, 7*24*time.Hour)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("user_id", u.ID.String()))
	return accessToken, refreshToken, AuthResponse{
		ID:       u.ID.String(),
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, usererrors.ErrUserNotFound
	}

	newAccess, err := s.generateToken(u.ID.String(), u.Role, 15*time.Minute)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefresh, err := s.generateToken(u.ID.String(), u.Role, 7*24*time.Hour)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccess, newRefresh, AuthResponse{
		ID:       u.ID.String(),
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, usererrors.ErrUserNotFound
	}
	return &AuthResponse{
		ID:       u.ID.String(),
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}, nil
}

func (s *service) generateToken(userID, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}
