package organization

import (
	"context"
	"errors"
	"strings"

	"go-orgsuite/internal/domain"
	organizationerrors "go-orgsuite/internal/organization/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, ownerID string, req CreateOrganizationRequest) (OrganizationResponse, error)
	GetMine(ctx context.Context, userID string, role domain.GlobalRole) ([]OrganizationResponse, error)
	GetByID(ctx context.Context, userID string, role domain.GlobalRole, id string) (OrganizationResponse, error)
	Update(ctx context.Context, userID string, role domain.GlobalRole, id string, req UpdateOrganizationRequest) (OrganizationResponse, error)
	Delete(ctx context.Context, userID string, role domain.GlobalRole, id string) error
	Members(ctx context.Context, userID string, role domain.GlobalRole, orgID string) ([]MemberResponse, error)
	AddMember(ctx context.Context, actorID string, actorRole domain.GlobalRole, orgID string, req AddMemberRequest) error
	Switch(ctx context.Context, userID string, role domain.GlobalRole, orgID string) error
}

type service struct {
	repo     Repository
	sessions *ActiveOrgStore
	logger   *zap.Logger
}

func NewService(repo Repository, sessions *ActiveOrgStore, logger ...*zap.Logger) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	return &service{repo: repo, sessions: sessions, logger: l}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateOrganizationRequest) (OrganizationResponse, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return OrganizationResponse{}, organizationerrors.ErrInvalidOrganizationID
	}

	org := &Organization{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(req.Name),
		Slug:    strings.ToLower(strings.TrimSpace(req.Slug)),
		OwnerID: owner,
		Status:  StatusActive,
	}
	membership := &Membership{
		ID:     uuid.New(),
		UserID: owner,
		OrgID:  org.ID,
		Role:   string(domain.RoleOwner),
	}

	if err := s.repo.CreateWithOwner(ctx, org, membership); err != nil {
		s.logger.Error("create organization failed", zap.String("slug", org.Slug), zap.Error(err))
		return OrganizationResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("organization created",
		zap.String("org_id", org.ID.String()),
		zap.String("owner_id", ownerID),
	)
	return mapToResponse(*org), nil
}

func (s *service) GetMine(ctx context.Context, userID string, role domain.GlobalRole) ([]OrganizationResponse, error) {
	if role.IsAdmin() {
		orgs, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		return mapToListResponse(orgs), nil
	}

	candidates, err := s.repo.CandidatesForUser(ctx, userID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	result := make([]OrganizationResponse, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, OrganizationResponse{
			ID:   c.OrgID,
			Name: c.Name,
			Slug: c.Slug,
		})
	}
	return result, nil
}

func (s *service) GetByID(ctx context.Context, userID string, role domain.GlobalRole, id string) (OrganizationResponse, error) {
	if err := s.requireMember(ctx, userID, role, id); err != nil {
		return OrganizationResponse{}, err
	}

	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*org), nil
}

func (s *service) Update(ctx context.Context, userID string, role domain.GlobalRole, id string, req UpdateOrganizationRequest) (OrganizationResponse, error) {
	org, err := s.findOwned(ctx, userID, role, id)
	if err != nil {
		return OrganizationResponse{}, err
	}

	if req.Name != "" {
		org.Name = req.Name
	}
	if req.Status != "" {
		org.Status = req.Status
	}

	if err := s.repo.Update(ctx, org); err != nil {
		s.logger.Error("update organization failed", zap.String("org_id", id), zap.Error(err))
		return OrganizationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*org), nil
}

func (s *service) Delete(ctx context.Context, userID string, role domain.GlobalRole, id string) error {
	if _, err := s.findOwned(ctx, userID, role, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("organization deleted", zap.String("org_id", id), zap.String("actor_id", userID))
	return nil
}

func (s *service) Members(ctx context.Context, userID string, role domain.GlobalRole, orgID string) ([]MemberResponse, error) {
	if err := s.requireMember(ctx, userID, role, orgID); err != nil {
		return nil, err
	}

	members, err := s.repo.FindMembers(ctx, orgID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	result := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, MemberResponse{
			UserID:   m.UserID.String(),
			Role:     string(domain.ParseRole(m.Role)),
			JoinedAt: m.CreatedAt,
		})
	}
	return result, nil
}

func (s *service) AddMember(ctx context.Context, actorID string, actorRole domain.GlobalRole, orgID string, req AddMemberRequest) error {
	if !actorRole.IsAdmin() {
		candidates, err := s.repo.CandidatesForUser(ctx, actorID)
		if err != nil {
			return mapRepositoryError(err)
		}
		var actorOrgRole domain.Role
		for _, c := range candidates {
			if c.OrgID == orgID {
				actorOrgRole = c.Role
				break
			}
		}
		if !actorOrgRole.CanManage() {
			return organizationerrors.ErrNotAMember
		}
	}

	oid, err := uuid.Parse(orgID)
	if err != nil {
		return organizationerrors.ErrInvalidOrganizationID
	}
	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return organizationerrors.ErrInvalidOrganizationID
	}

	m := &Membership{
		ID:     uuid.New(),
		UserID: uid,
		OrgID:  oid,
		Role:   string(domain.ParseRole(req.Role)),
	}
	if err := s.repo.AddMember(ctx, m); err != nil {
		s.logger.Error("add member failed",
			zap.String("org_id", orgID),
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	return nil
}

// Switch memvalidasi membership lalu menulis pointer session.
// Ini satu-satunya jalur tulis untuk organisasi aktif.
func (s *service) Switch(ctx context.Context, userID string, role domain.GlobalRole, orgID string) error {
	if !role.IsAdmin() {
		ok, err := s.repo.IsMember(ctx, userID, orgID)
		if err != nil {
			return mapRepositoryError(err)
		}
		if !ok {
			s.logger.Warn("switch to non-member organization rejected",
				zap.String("user_id", userID),
				zap.String("org_id", orgID),
			)
			return organizationerrors.ErrNotAMember
		}
	} else {
		// Admin bebas switch, tapi org-nya harus ada
		if _, err := s.repo.FindByID(ctx, orgID); err != nil {
			return mapRepositoryError(err)
		}
	}

	if err := s.sessions.SetActiveOrgID(ctx, userID, orgID); err != nil {
		s.logger.Error("persist active org failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	s.logger.Info("active organization switched",
		zap.String("user_id", userID),
		zap.String("org_id", orgID),
	)
	return nil
}

func (s *service) requireMember(ctx context.Context, userID string, role domain.GlobalRole, orgID string) error {
	if role.IsAdmin() {
		return nil
	}
	ok, err := s.repo.IsMember(ctx, userID, orgID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !ok {
		// Not-found, bukan forbidden: jangan bocorkan eksistensi org lain
		return organizationerrors.ErrOrganizationNotFound
	}
	return nil
}

func (s *service) findOwned(ctx context.Context, userID string, role domain.GlobalRole, id string) (*Organization, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !role.IsAdmin() && org.OwnerID.String() != userID {
		return nil, organizationerrors.ErrNotOwner
	}
	return org, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return organizationerrors.ErrOrganizationNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return organizationerrors.ErrSlugAlreadyExists
	}
	return err
}

func mapToResponse(org Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        org.ID.String(),
		Name:      org.Name,
		Slug:      org.Slug,
		OwnerID:   org.OwnerID.String(),
		Status:    org.Status,
		CreatedAt: org.CreatedAt,
	}
}

func mapToListResponse(orgs []Organization) []OrganizationResponse {
	result := make([]OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		result = append(result, mapToResponse(org))
	}
	return result
}
