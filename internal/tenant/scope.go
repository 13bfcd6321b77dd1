package tenant

import (
	"context"

	"go-orgsuite/internal/shared/apperror"

	"gorm.io/gorm"
)

// Scope adalah hasil resolusi organisasi aktif untuk satu request.
// Immutable: dibuat sekali oleh resolver lalu hanya dibaca.
type Scope struct {
	ActiveOrgID string
	GlobalView  bool
}

// Empty berarti user tidak punya membership sama sekali (bukan error).
func (s Scope) Empty() bool {
	return s.ActiveOrgID == ""
}

// RequireOrg dipakai handler/service yang wajib punya organisasi aktif.
func (s Scope) RequireOrg() (string, error) {
	if s.ActiveOrgID == "" {
		return "", apperror.ErrMissingScope
	}
	return s.ActiveOrgID, nil
}

// Filter adalah gorm scope untuk semua read tenant-owned entity.
// Global view melewati filter org; selain itu selalu org_id = aktif.
func Filter(sc Scope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if sc.GlobalView {
			return db
		}
		return db.Where("org_id = ?", sc.ActiveOrgID)
	}
}

// MutationFilter dipakai di WHERE setiap update/delete.
// Global view sengaja TIDAK membebaskan mutasi: menulis lintas tenant
// harus lewat org id eksplisit, bukan lewat bypass baca.
func MutationFilter(sc Scope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("org_id = ?", sc.ActiveOrgID)
	}
}

type contextKey string

const scopeKey contextKey = "tenant_scope"

func WithScope(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// FromContext mengambil scope; Scope kosong jika resolver belum jalan.
func FromContext(ctx context.Context) Scope {
	if sc, ok := ctx.Value(scopeKey).(Scope); ok {
		return sc
	}
	return Scope{}
}
