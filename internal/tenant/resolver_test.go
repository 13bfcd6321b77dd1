package tenant_test

import (
	"context"
	"errors"
	"testing"

	"go-orgsuite/internal/domain"
	"go-orgsuite/internal/shared/apperror"
	"go-orgsuite/internal/tenant"

	"github.com/stretchr/testify/assert"
)

type fakeMembershipSource struct {
	CandidatesFn func(ctx context.Context, userID string) ([]tenant.Candidate, error)
	AllFn        func(ctx context.Context) ([]tenant.Candidate, error)
}

func (f *fakeMembershipSource) CandidatesForUser(ctx context.Context, userID string) ([]tenant.Candidate, error) {
	return f.CandidatesFn(ctx, userID)
}

func (f *fakeMembershipSource) AllOrganizations(ctx context.Context) ([]tenant.Candidate, error) {
	return f.AllFn(ctx)
}

type fakeSessionStore struct {
	orgID string
	err   error
}

func (f *fakeSessionStore) ActiveOrgID(ctx context.Context, userID string) (string, error) {
	return f.orgID, f.err
}

var testSentinel = tenant.Sentinel{Name: "Direksi", Slug: "admin-workspace"}

func memberships(cands ...tenant.Candidate) *fakeMembershipSource {
	return &fakeMembershipSource{
		CandidatesFn: func(ctx context.Context, userID string) ([]tenant.Candidate, error) {
			return cands, nil
		},
		AllFn: func(ctx context.Context) ([]tenant.Candidate, error) {
			return nil, errors.New("should not query all organizations")
		},
	}
}

func TestResolver_AdminOverride(t *testing.T) {
	// Admin global: kandidat = semua organisasi, bukan membership user
	allOrgs := []tenant.Candidate{
		{OrgID: "org-1", Name: "Alpha", Slug: "alpha", Role: domain.RoleAdmin},
		{OrgID: "org-2", Name: "Beta", Slug: "beta", Role: domain.RoleAdmin},
	}
	members := &fakeMembershipSource{
		CandidatesFn: func(ctx context.Context, userID string) ([]tenant.Candidate, error) {
			return nil, errors.New("admin must not use membership rows")
		},
		AllFn: func(ctx context.Context) ([]tenant.Candidate, error) {
			return allOrgs, nil
		},
	}

	r := tenant.NewResolver(members, &fakeSessionStore{}, testSentinel)
	sc, err := r.Resolve(context.Background(), "user-1", domain.GlobalRoleAdmin, "")

	assert.NoError(t, err)
	assert.Equal(t, "org-1", sc.ActiveOrgID)

	// Admin juga bisa pin org manapun lewat session
	r = tenant.NewResolver(members, &fakeSessionStore{orgID: "org-2"}, testSentinel)
	sc, err = r.Resolve(context.Background(), "user-1", domain.GlobalRoleAdmin, "")

	assert.NoError(t, err)
	assert.Equal(t, "org-2", sc.ActiveOrgID)
}

func TestResolver_SessionPinWinsOverHeader(t *testing.T) {
	members := memberships(
		tenant.Candidate{OrgID: "org-a", Name: "A", Slug: "a", Role: domain.RoleMember},
		tenant.Candidate{OrgID: "org-b", Name: "B", Slug: "b", Role: domain.RoleMember},
	)
	sessions := &fakeSessionStore{orgID: "org-a"}

	r := tenant.NewResolver(members, sessions, testSentinel)
	// Header menunjuk org-b yang juga valid, tapi session menang
	sc, err := r.Resolve(context.Background(), "user-1", domain.GlobalRoleUser, "org-b")

	assert.NoError(t, err)
	assert.Equal(t, "org-a", sc.ActiveOrgID)
}

func TestResolver_StaleSessionPinFallsThrough(t *testing.T) {
	// Pin session menunjuk org yang sudah bukan membership -> diabaikan
	members := memberships(
		tenant.Candidate{OrgID: "org-a", Name: "A", Slug: "a", Role: domain.RoleMember},
	)
	sessions := &fakeSessionStore{orgID: "org-gone"}

	r := tenant.NewResolver(members, sessions, testSentinel)
	sc, err := r.Resolve(context.Background(), "user-1", domain.GlobalRoleUser, "")

	assert.NoError(t, err)
	assert.Equal(t, "org-a", sc.ActiveOrgID)
}

func TestResolver_HeaderRejectedWhenNotMember(t *testing.T) {
	members := memberships(
		tenant.Candidate{OrgID: "org-a", Name: "A", Slug: "a", Role: domain.RoleMember},
	)

	r := tenant.NewResolver(members, &fakeSessionStore{}, testSentinel)
	sc, err := r.Resolve(context.Background(), "user-1", domain.GlobalRoleUser, "org-x")

	// Harus 403, TIDAK boleh jatuh ke default-first
	assert.ErrorIs(t, err, apperror.ErrForbiddenScope)
	assert.True(t, sc.Empty())
}

func TestResolver_HeaderSelectsValidOrg(t *testing.T) {
	members := memberships(
		tenant.Candidate{OrgID: "org-a", Name: "A", Slug: "a", Role: domain.RoleMember},
		tenant.Candidate{OrgID: "org-b", Name: "B", Slug: "b", Role: domain.RoleMember},
	)

	r := tenant.NewResolver(members, &fakeSessionStore{}, testSentinel)
	sc, err := r.Resolve(context.Background(), "user-1", domain.GlobalRoleUser, "org-b")

	assert.NoError(t, err)
	assert.Equal(t, "org-b", sc.ActiveOrgID)
}

func TestResolver_DefaultFirstIsDeterministic(t *testing.T) {
	members := memberships(
		tenant.Candidate{OrgID: "org-a", Name: "A", Slug: "a", Role: domain.RoleMember},
		tenant.Candidate{OrgID: "org-b", Name: "B", Slug: "b", Role: domain.RoleMember},
	)
	r := tenant.NewResolver(members, &fakeSessionStore{}, testSentinel)

	for i := 0; i < 2; i++ {
		sc, err := r.Resolve(context.Background(), "user-1", domain.GlobalRoleUser, "")
		assert.NoError(t, err)
		assert.Equal(t, "org-a", sc.ActiveOrgID)
	}
}

func TestResolver_EmptyMembershipPassthrough(t *testing.T) {
	r := tenant.NewResolver(memberships(), &fakeSessionStore{}, testSentinel)
	sc, err := r.Resolve(context.Background(), "user-1", domain.GlobalRoleUser, "")

	assert.NoError(t, err)
	assert.True(t, sc.Empty())
	assert.False(t, sc.GlobalView)

	_, err = sc.RequireOrg()
	assert.ErrorIs(t, err, apperror.ErrMissingScope)
}

func TestResolver_GlobalViewSentinel(t *testing.T) {
	t.Run("by name", func(t *testing.T) {
		members := memberships(
			tenant.Candidate{OrgID: "org-d", Name: "Direksi", Slug: "direksi", Role: domain.RoleOwner},
		)
		r := tenant.NewResolver(members, &fakeSessionStore{}, testSentinel)
		sc, err := r.Resolve(context.Background(), "user-1", domain.GlobalRoleUser, "")

		assert.NoError(t, err)
		assert.True(t, sc.GlobalView)
	})

	t.Run("by slug", func(t *testing.T) {
		members := memberships(
			tenant.Candidate{OrgID: "org-w", Name: "Workspace", Slug: "admin-workspace", Role: domain.RoleOwner},
		)
		r := tenant.NewResolver(members, &fakeSessionStore{}, testSentinel)
		sc, err := r.Resolve(context.Background(), "user-1", domain.GlobalRoleUser, "")

		assert.NoError(t, err)
		assert.True(t, sc.GlobalView)
	})

	t.Run("non sentinel never bypasses", func(t *testing.T) {
		members := memberships(
			tenant.Candidate{OrgID: "org-a", Name: "Alpha", Slug: "alpha", Role: domain.RoleOwner},
		)
		r := tenant.NewResolver(members, &fakeSessionStore{}, testSentinel)
		sc, err := r.Resolve(context.Background(), "user-1", domain.GlobalRoleUser, "")

		assert.NoError(t, err)
		assert.False(t, sc.GlobalView)
	})
}

func TestResolver_MembershipSourceError(t *testing.T) {
	boom := errors.New("db down")
	members := &fakeMembershipSource{
		CandidatesFn: func(ctx context.Context, userID string) ([]tenant.Candidate, error) {
			return nil, boom
		},
	}

	r := tenant.NewResolver(members, &fakeSessionStore{}, testSentinel)
	_, err := r.Resolve(context.Background(), "user-1", domain.GlobalRoleUser, "")

	assert.ErrorIs(t, err, boom)
}
