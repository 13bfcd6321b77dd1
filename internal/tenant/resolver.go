package tenant

import (
	"context"
	"os"

	"go-orgsuite/internal/domain"
	"go-orgsuite/internal/shared/apperror"

	"go.uber.org/zap"
)

// Candidate adalah satu organisasi yang boleh dipilih jadi scope aktif.
type Candidate struct {
	OrgID string
	Name  string
	Slug  string
	Role  domain.Role
}

//go:generate mockgen -source=resolver.go -destination=mock/resolver_mock.go -package=mock

// MembershipSource menyediakan kandidat organisasi untuk resolusi.
// CandidatesForUser harus mengembalikan urutan deterministik
// (membership tertua dulu, tie-break id) karena fallback default
// mengambil elemen pertama.
type MembershipSource interface {
	CandidatesForUser(ctx context.Context, userID string) ([]Candidate, error)
	AllOrganizations(ctx context.Context) ([]Candidate, error)
}

// SessionStore membaca pointer organisasi aktif milik session.
// Resolver hanya membaca; yang menulis adalah endpoint switch-org.
type SessionStore interface {
	ActiveOrgID(ctx context.Context, userID string) (string, error)
}

// Sentinel menandai organisasi yang mendapat global view.
type Sentinel struct {
	Name string
	Slug string
}

func SentinelFromEnv() Sentinel {
	s := Sentinel{
		Name: os.Getenv("GLOBAL_VIEW_ORG_NAME"),
		Slug: os.Getenv("GLOBAL_VIEW_ORG_SLUG"),
	}
	if s.Name == "" {
		s.Name = "Direksi"
	}
	if s.Slug == "" {
		s.Slug = "admin-workspace"
	}
	return s
}

func (s Sentinel) Matches(c Candidate) bool {
	return c.Name == s.Name || c.Slug == s.Slug
}

type Resolver struct {
	members  MembershipSource
	sessions SessionStore
	sentinel Sentinel
	logger   *zap.Logger
}

func NewResolver(members MembershipSource, sessions SessionStore, sentinel Sentinel, logger ...*zap.Logger) *Resolver {
	l := zap.L().Named("tenant.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tenant.resolver")
	}
	return &Resolver{
		members:  members,
		sessions: sessions,
		sentinel: sentinel,
		logger:   l,
	}
}

// Resolve menentukan organisasi aktif untuk satu request.
// Urutan prioritas:
//  1. admin global -> kandidat diganti SEMUA organisasi (role Admin)
//  2. org yang di-pin session, kalau masih ada di kandidat
//  3. header X-Organization-ID, WAJIB ada di kandidat (kalau tidak: 403)
//  4. membership pertama (urutan created_at, id)
//  5. tanpa membership -> scope kosong, bukan error
//
// Header yang salah selalu ditolak; header yang tidak ada jatuh ke
// fallback. Asimetri ini disengaja dan dijaga oleh test.
func (r *Resolver) Resolve(ctx context.Context, userID string, globalRole domain.GlobalRole, headerOrgID string) (Scope, error) {
	var (
		candidates []Candidate
		err        error
	)

	if globalRole.IsAdmin() {
		candidates, err = r.members.AllOrganizations(ctx)
	} else {
		candidates, err = r.members.CandidatesForUser(ctx, userID)
	}
	if err != nil {
		r.logger.Error("load candidates failed", zap.String("user_id", userID), zap.Error(err))
		return Scope{}, err
	}

	byID := make(map[string]Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.OrgID] = c
	}

	sessionOrgID, err := r.sessions.ActiveOrgID(ctx, userID)
	if err != nil {
		r.logger.Error("read session org failed", zap.String("user_id", userID), zap.Error(err))
		return Scope{}, err
	}

	var selected Candidate
	switch {
	case sessionOrgID != "" && hasOrg(byID, sessionOrgID):
		selected = byID[sessionOrgID]
	case headerOrgID != "":
		c, ok := byID[headerOrgID]
		if !ok {
			r.logger.Warn("org header rejected",
				zap.String("user_id", userID),
				zap.String("requested_org_id", headerOrgID),
			)
			return Scope{}, apperror.ErrForbiddenScope
		}
		selected = c
	case len(candidates) > 0:
		selected = candidates[0]
	default:
		// User tanpa organisasi: request tetap jalan tanpa scope.
		return Scope{}, nil
	}

	sc := Scope{ActiveOrgID: selected.OrgID}
	if r.sentinel.Matches(selected) {
		sc.GlobalView = true
		r.logger.Debug("global view enabled",
			zap.String("user_id", userID),
			zap.String("org_id", selected.OrgID),
		)
	}
	return sc, nil
}

func hasOrg(byID map[string]Candidate, id string) bool {
	_, ok := byID[id]
	return ok
}
