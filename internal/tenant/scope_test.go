package tenant_test

import (
	"testing"

	"go-orgsuite/internal/tenant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{DryRun: true, SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return db
}

type scopedRow struct {
	ID    string
	OrgID string
	Title string
}

func TestFilter_AppliesOrgClause(t *testing.T) {
	db := dryRunDB(t)
	sc := tenant.Scope{ActiveOrgID: "org-1"}

	stmt := db.Scopes(tenant.Filter(sc)).Find(&[]scopedRow{}).Statement

	assert.Contains(t, stmt.SQL.String(), "org_id")
	assert.Contains(t, stmt.Vars, "org-1")
}

func TestFilter_GlobalViewDropsOrgClause(t *testing.T) {
	db := dryRunDB(t)
	sc := tenant.Scope{ActiveOrgID: "org-direksi", GlobalView: true}

	stmt := db.Scopes(tenant.Filter(sc)).Find(&[]scopedRow{}).Statement

	assert.NotContains(t, stmt.SQL.String(), "org_id")
}

func TestMutationFilter_IgnoresGlobalView(t *testing.T) {
	// Mutasi tetap terkunci ke org aktif meskipun global view
	db := dryRunDB(t)
	sc := tenant.Scope{ActiveOrgID: "org-direksi", GlobalView: true}

	stmt := db.Scopes(tenant.MutationFilter(sc)).
		Where("id = ?", "row-1").
		Delete(&scopedRow{}).Statement

	assert.Contains(t, stmt.SQL.String(), "org_id")
	assert.Contains(t, stmt.Vars, "org-direksi")
}
