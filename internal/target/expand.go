package target

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var yearPattern = regexp.MustCompile(`(\d{4})\s*$`)

// ParseYear mengambil tahun 4 digit dari header semacam "Target 2026".
// Kalau tidak ketemu atau tidak bisa diparse, pakai tahun berjalan.
func ParseYear(header string, now time.Time) int {
	m := yearPattern.FindStringSubmatch(strings.TrimSpace(header))
	if m == nil {
		return now.Year()
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return now.Year()
	}
	return year
}

// parseCell menerima isi sel spreadsheet. Hanya angka positif yang
// menghasilkan baris; nol, kosong, dan non-numerik di-skip.
func parseCell(cell string) (float64, bool) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// ExpandRows memperluas matriks kategori x 12 kolom bulan menjadi baris
// target per bulan. Kolom pertama tiap baris adalah judul kategori,
// kolom berikutnya nilai Januari..Desember.
func ExpandRows(orgID uuid.UUID, header string, rows [][]string, now time.Time) []Target {
	year := ParseYear(header, now)

	var targets []Target
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		title := strings.TrimSpace(row[0])
		if title == "" {
			continue
		}

		months := row[1:]
		if len(months) > 12 {
			months = months[:12]
		}

		for i, cell := range months {
			amount, ok := parseCell(cell)
			if !ok {
				continue
			}

			month := time.Month(i + 1)
			start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(0, 1, -1)

			targets = append(targets, Target{
				OrgID:     orgID,
				Title:     title,
				StartDate: start,
				EndDate:   end,
				Amount:    amount,
			})
		}
	}
	return targets
}
