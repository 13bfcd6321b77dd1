package organization

import (
	"context"

	"go-orgsuite/internal/domain"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_repo.go -destination=mock/organization_repo_mock.go -package=mock
type Repository interface {
	CreateWithOwner(ctx context.Context, org *Organization, owner *Membership) error
	FindByID(ctx context.Context, id string) (*Organization, error)
	FindBySlug(ctx context.Context, slug string) (*Organization, error)
	FindAll(ctx context.Context) ([]Organization, error)
	Update(ctx context.Context, org *Organization) error
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, m *Membership) error
	FindMembers(ctx context.Context, orgID string) ([]Membership, error)
	IsMember(ctx context.Context, userID, orgID string) (bool, error)

	// authz.RoleSource
	RoleInOrg(ctx context.Context, userID, orgID string) (domain.Role, error)

	// tenant.MembershipSource
	CandidatesForUser(ctx context.Context, userID string) ([]tenant.Candidate, error)
	AllOrganizations(ctx context.Context) ([]tenant.Candidate, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithOwner menulis organisasi dan membership Owner dalam satu
// transaksi supaya tidak ada org tanpa owner saat crash di tengah.
func (r *repository) CreateWithOwner(ctx context.Context, org *Organization, owner *Membership) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		return tx.Create(owner).Error
	})
}

func (r *repository) FindByID(ctx context.Context, id string) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	return &org, err
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).First(&org, "slug = ?", slug).Error
	return &org, err
}

func (r *repository) FindAll(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&orgs).Error
	return orgs, err
}

func (r *repository) Update(ctx context.Context, org *Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Organization{}, "id = ?", id).Error
}

// AddMember: insert-if-not-exists per pasangan (user, org).
// Dua request paralel bisa balapan di sini; lihat catatan di entity.
func (r *repository) AddMember(ctx context.Context, m *Membership) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND org_id = ?", m.UserID, m.OrgID).
		FirstOrCreate(m).Error
}

func (r *repository) FindMembers(ctx context.Context, orgID string) ([]Membership, error) {
	var members []Membership
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) IsMember(ctx context.Context, userID, orgID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Membership{}).
		Where("user_id = ? AND org_id = ?", userID, orgID).
		Count(&count).Error
	return count > 0, err
}

// RoleInOrg mengembalikan role kosong (bukan error) jika user bukan
// member; string role lama yang tidak dikenali dinormalkan ke Member.
func (r *repository) RoleInOrg(ctx context.Context, userID, orgID string) (domain.Role, error) {
	var role string
	err := r.db.WithContext(ctx).
		Model(&Membership{}).
		Select("role").
		Where("user_id = ? AND org_id = ?", userID, orgID).
		Limit(1).
		Scan(&role).Error
	if err != nil {
		return "", err
	}
	if role == "" {
		return "", nil
	}
	return domain.ParseRole(role), nil
}

type candidateRow struct {
	OrgID uuid.UUID
	Name  string
	Slug  string
	Role  string
}

// CandidatesForUser: urutan WAJIB deterministik (created_at lalu id)
// karena resolver memakai elemen pertama sebagai default.
func (r *repository) CandidatesForUser(ctx context.Context, userID string) ([]tenant.Candidate, error) {
	var rows []candidateRow
	err := r.db.WithContext(ctx).
		Table("memberships AS m").
		Select("m.org_id, o.name, o.slug, m.role").
		Joins("JOIN organizations o ON o.id = m.org_id").
		Where("m.user_id = ?", userID).
		Order("m.created_at ASC, m.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapCandidates(rows), nil
}

// AllOrganizations dipakai saat admin global: semua org, role Admin.
func (r *repository) AllOrganizations(ctx context.Context) ([]tenant.Candidate, error) {
	var orgs []Organization
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&orgs).Error
	if err != nil {
		return nil, err
	}

	candidates := make([]tenant.Candidate, 0, len(orgs))
	for _, o := range orgs {
		candidates = append(candidates, tenant.Candidate{
			OrgID: o.ID.String(),
			Name:  o.Name,
			Slug:  o.Slug,
			Role:  domain.RoleAdmin,
		})
	}
	return candidates, nil
}

func mapCandidates(rows []candidateRow) []tenant.Candidate {
	candidates := make([]tenant.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, tenant.Candidate{
			OrgID: row.OrgID.String(),
			Name:  row.Name,
			Slug:  row.Slug,
			Role:  domain.ParseRole(row.Role),
		})
	}
	return candidates
}
