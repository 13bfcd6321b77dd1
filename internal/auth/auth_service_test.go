package auth_test

import (
	"context"
	"errors"
	"testing"

	"go-orgsuite/internal/auth"
	autherrors "go-orgsuite/internal/auth/errors"
	"go-orgsuite/internal/domain"
	"go-orgsuite/internal/organization"
	"go-orgsuite/internal/user"
	usererrors "go-orgsuite/internal/user/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	createFn      func(ctx context.Context, u *user.User) error
	findByIDFn    func(ctx context.Context, id string) (*user.User, error)
	findByEmailFn func(ctx context.Context, email string) (*user.User, error)
	findAllFn     func(ctx context.Context) ([]user.User, error)
	updateFn      func(ctx context.Context, u *user.User) error
	deleteFn      func(ctx context.Context, id string) error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return f.createFn(ctx, u) }
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeUserRepo) FindAll(ctx context.Context) ([]user.User, error) { return f.findAllFn(ctx) }
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error   { return f.updateFn(ctx, u) }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error      { return f.deleteFn(ctx, id) }

type fakeOrgService struct {
	createFn    func(ctx context.Context, ownerID string, req organization.CreateOrganizationRequest) (organization.OrganizationResponse, error)
	createCalls int
}

func (f *fakeOrgService) Create(ctx context.Context, ownerID string, req organization.CreateOrganizationRequest) (organization.OrganizationResponse, error) {
	f.createCalls++
	return f.createFn(ctx, ownerID, req)
}

func (f *fakeOrgService) GetMine(context.Context, string, domain.GlobalRole) ([]organization.OrganizationResponse, error) {
	return nil, nil
}

func (f *fakeOrgService) GetByID(context.Context, string, domain.GlobalRole, string) (organization.OrganizationResponse, error) {
	return organization.OrganizationResponse{}, nil
}

func (f *fakeOrgService) Update(context.Context, string, domain.GlobalRole, string, organization.UpdateOrganizationRequest) (organization.OrganizationResponse, error) {
	return organization.OrganizationResponse{}, nil
}

func (f *fakeOrgService) Delete(context.Context, string, domain.GlobalRole, string) error {
	return nil
}

func (f *fakeOrgService) Members(context.Context, string, domain.GlobalRole, string) ([]organization.MemberResponse, error) {
	return nil, nil
}

func (f *fakeOrgService) AddMember(context.Context, string, domain.GlobalRole, string, organization.AddMemberRequest) error {
	return nil
}

func (f *fakeOrgService) Switch(context.Context, string, domain.GlobalRole, string) error {
	return nil
}

func TestAuthService_Register(t *testing.T) {
	t.Run("bootstraps first organization with registrant as owner", func(t *testing.T) {
		var created *user.User
		repo := &fakeUserRepo{
			createFn: func(_ context.Context, u *user.User) error {
				created = u
				return nil
			},
		}
		orgID := uuid.New().String()
		orgs := &fakeOrgService{
			createFn: func(_ context.Context, ownerID string, req organization.CreateOrganizationRequest) (organization.OrganizationResponse, error) {
				assert.Equal(t, created.ID.String(), ownerID)
				assert.Equal(t, "Yayasan Sahabat", req.Name)
				assert.Equal(t, "yayasan-sahabat", req.Slug)
				return organization.OrganizationResponse{ID: orgID, Name: req.Name, Slug: req.Slug}, nil
			},
		}

		svc := auth.NewService(repo, orgs)
		resp, err := svc.Register(context.Background(), auth.RegisterRequest{
			FullName:         "Budi Santoso",
			Email:            "  Budi@Example.COM ",
			Password:         "rahasia123",
			OrganizationName: "Yayasan Sahabat",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, orgs.createCalls)
		assert.Equal(t, orgID, resp.OrganizationID)
		assert.Equal(t, "budi@example.com", resp.Email)
		assert.Equal(t, "user", created.Role)
		assert.True(t, created.IsActive)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("rahasia123")))
	})

	t.Run("explicit slug wins over slugified name", func(t *testing.T) {
		repo := &fakeUserRepo{
			createFn: func(context.Context, *user.User) error { return nil },
		}
		orgs := &fakeOrgService{
			createFn: func(_ context.Context, _ string, req organization.CreateOrganizationRequest) (organization.OrganizationResponse, error) {
				assert.Equal(t, "ysb", req.Slug)
				return organization.OrganizationResponse{ID: uuid.New().String()}, nil
			},
		}

		svc := auth.NewService(repo, orgs)
		_, err := svc.Register(context.Background(), auth.RegisterRequest{
			FullName:         "Budi",
			Email:            "budi@example.com",
			Password:         "rahasia123",
			OrganizationName: "Yayasan Sahabat Bangsa",
			OrganizationSlug: "ysb",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, orgs.createCalls)
	})

	t.Run("without organization name skips bootstrap", func(t *testing.T) {
		repo := &fakeUserRepo{
			createFn: func(context.Context, *user.User) error { return nil },
		}
		orgs := &fakeOrgService{
			createFn: func(context.Context, string, organization.CreateOrganizationRequest) (organization.OrganizationResponse, error) {
				t.Fatal("organization should not be created")
				return organization.OrganizationResponse{}, nil
			},
		}

		svc := auth.NewService(repo, orgs)
		resp, err := svc.Register(context.Background(), auth.RegisterRequest{
			FullName: "Budi",
			Email:    "budi@example.com",
			Password: "rahasia123",
		})

		assert.NoError(t, err)
		assert.Zero(t, orgs.createCalls)
		assert.Empty(t, resp.OrganizationID)
	})

	t.Run("duplicate email maps unique violation to conflict", func(t *testing.T) {
		repo := &fakeUserRepo{
			createFn: func(context.Context, *user.User) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
			},
		}

		svc := auth.NewService(repo, &fakeOrgService{})
		_, err := svc.Register(context.Background(), auth.RegisterRequest{
			FullName: "Budi",
			Email:    "budi@example.com",
			Password: "rahasia123",
		})

		assert.ErrorIs(t, err, usererrors.ErrEmailAlreadyExists)
	})

	t.Run("bootstrap failure surfaces to caller", func(t *testing.T) {
		repo := &fakeUserRepo{
			createFn: func(context.Context, *user.User) error { return nil },
		}
		orgs := &fakeOrgService{
			createFn: func(context.Context, string, organization.CreateOrganizationRequest) (organization.OrganizationResponse, error) {
				return organization.OrganizationResponse{}, errors.New("tx aborted")
			},
		}

		svc := auth.NewService(repo, orgs)
		_, err := svc.Register(context.Background(), auth.RegisterRequest{
			FullName:         "Budi",
			Email:            "budi@example.com",
			Password:         "rahasia123",
			OrganizationName: "Yayasan Sahabat",
		})

		assert.EqualError(t, err, "tx aborted")
	})
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)
	active := &user.User{
		ID:       uuid.New(),
		FullName: "Budi",
		Email:    "budi@example.com",
		Password: string(hashed),
		Role:     "user",
		IsActive: true,
	}

	t.Run("success issues token pair", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		repo := &fakeUserRepo{
			findByEmailFn: func(_ context.Context, email string) (*user.User, error) {
				assert.Equal(t, "budi@example.com", email)
				return active, nil
			},
		}

		svc := auth.NewService(repo, &fakeOrgService{})
		access, refresh, resp, err := svc.Login(context.Background(), " Budi@Example.com ", "rahasia123")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, active.ID.String(), resp.ID)
	})

	t.Run("unknown email rejected as invalid credentials", func(t *testing.T) {
		repo := &fakeUserRepo{
			findByEmailFn: func(context.Context, string) (*user.User, error) {
				return nil, errors.New("record not found")
			},
		}

		svc := auth.NewService(repo, &fakeOrgService{})
		_, _, _, err := svc.Login(context.Background(), "siapa@example.com", "rahasia123")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong password rejected as invalid credentials", func(t *testing.T) {
		repo := &fakeUserRepo{
			findByEmailFn: func(context.Context, string) (*user.User, error) { return active, nil },
		}

		svc := auth.NewService(repo, &fakeOrgService{})
		_, _, _, err := svc.Login(context.Background(), "budi@example.com", "salah")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive account rejected", func(t *testing.T) {
		inactive := *active
		inactive.IsActive = false
		repo := &fakeUserRepo{
			findByEmailFn: func(context.Context, string) (*user.User, error) { return &inactive, nil },
		}

		svc := auth.NewService(repo, &fakeOrgService{})
		_, _, _, err := svc.Login(context.Background(), "budi@example.com", "rahasia123")

		assert.ErrorIs(t, err, autherrors.ErrAccountInactive)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	t.Run("missing user maps to not found", func(t *testing.T) {
		repo := &fakeUserRepo{
			findByIDFn: func(context.Context, string) (*user.User, error) {
				return nil, errors.New("record not found")
			},
		}

		svc := auth.NewService(repo, &fakeOrgService{})
		_, err := svc.GetMe(context.Background(), uuid.New().String())

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}
