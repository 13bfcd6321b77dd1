package target_test

import (
	"testing"
	"time"

	"go-orgsuite/internal/target"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseYear(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"label with year", "Target 2026", 2026},
		{"year only", "2027", 2027},
		{"trailing spaces", "Target Fundraising 2024  ", 2024},
		{"no year falls back to current", "Target Tahunan", 2025},
		{"empty header falls back", "", 2025},
		{"year not at end falls back", "2026 Target", 2025},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, target.ParseYear(tc.header, now))
		})
	}
}

func TestExpandRows(t *testing.T) {
	orgID := uuid.New()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("sparse row expands only positive numeric months", func(t *testing.T) {
		rows := [][]string{
			{"Perusahaan", "100", "0", "", "50", "", "", "", "", "", "", "", ""},
		}

		got := target.ExpandRows(orgID, "Target 2026", rows, now)

		assert.Len(t, got, 2)

		assert.Equal(t, "Perusahaan", got[0].Title)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), got[0].StartDate)
		assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), got[0].EndDate)
		assert.Equal(t, 100.0, got[0].Amount)

		assert.Equal(t, "Perusahaan", got[1].Title)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), got[1].StartDate)
		assert.Equal(t, time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), got[1].EndDate)
		assert.Equal(t, 50.0, got[1].Amount)
	})

	t.Run("non numeric and negative cells skipped", func(t *testing.T) {
		rows := [][]string{
			{"Donatur", "abc", "-5", "12.5"},
		}

		got := target.ExpandRows(orgID, "Target 2026", rows, now)

		assert.Len(t, got, 1)
		assert.Equal(t, 12.5, got[0].Amount)
		assert.Equal(t, time.March, got[0].StartDate.Month())
	})

	t.Run("february end date respects month length", func(t *testing.T) {
		rows := [][]string{
			{"Kas", "", "200"},
		}

		got := target.ExpandRows(orgID, "Target 2026", rows, now)

		assert.Len(t, got, 1)
		assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), got[0].EndDate)
	})

	t.Run("missing year header uses current year", func(t *testing.T) {
		rows := [][]string{
			{"Kas", "10"},
		}

		got := target.ExpandRows(orgID, "Rekap Bulanan", rows, now)

		assert.Len(t, got, 1)
		assert.Equal(t, 2025, got[0].StartDate.Year())
	})

	t.Run("empty title and short rows skipped", func(t *testing.T) {
		rows := [][]string{
			{"", "100"},
			{"SoloTitle"},
			{"  ", "100"},
		}

		got := target.ExpandRows(orgID, "Target 2026", rows, now)
		assert.Empty(t, got)
	})

	t.Run("columns beyond december ignored", func(t *testing.T) {
		row := make([]string, 15)
		row[0] = "Kas"
		row[12] = "30" // Desember
		row[13] = "99"
		row[14] = "99"

		got := target.ExpandRows(orgID, "Target 2026", [][]string{row}, now)

		assert.Len(t, got, 1)
		assert.Equal(t, time.December, got[0].StartDate.Month())
	})
}
