package lalin

import (
	"sort"
	"strings"

	"github.com/satriapw/tolldash/internal/domain"
)

// SortRows returns a sorted copy of rows. Numeric fields compare
// numerically, Tanggal compares by the machine-sortable date string, the
// rest compare case-insensitively. The sort is stable so equal keys keep
// their pre-sort relative order.
func SortRows(rows []domain.LalinTableRow, cfg domain.LalinSortConfig) []domain.LalinTableRow {
	sorted := make([]domain.LalinTableRow, len(rows))
	copy(sorted, rows)

	desc := cfg.Direction == domain.SortDesc

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compareRows(&sorted[i], &sorted[j], cfg.Field)
		if desc {
			return c > 0
		}
		return c < 0
	})

	return sorted
}

func compareRows(a, b *domain.LalinTableRow, field domain.LalinSortField) int {
	if av, bv, ok := numericValues(a, b, field); ok {
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}

	var as, bs string
	switch field {
	case domain.SortTanggal:
		// machine form, not the display form
		return strings.Compare(a.TanggalRaw, b.TanggalRaw)
	case domain.SortRuas:
		as, bs = a.Ruas, b.Ruas
	case domain.SortGerbang:
		as, bs = a.Gerbang, b.Gerbang
	case domain.SortHari:
		as, bs = a.Hari, b.Hari
	default:
		// unknown field, keep the incoming order
		return 0
	}

	return strings.Compare(strings.ToLower(as), strings.ToLower(bs))
}

func numericValues(a, b *domain.LalinTableRow, field domain.LalinSortField) (int64, int64, bool) {
	switch field {
	case domain.SortGardu:
		return a.Gardu, b.Gardu, true
	case domain.SortShift:
		return int64(a.Shift), int64(b.Shift), true
	case domain.SortGol1:
		return int64(a.Gol1), int64(b.Gol1), true
	case domain.SortGol2:
		return int64(a.Gol2), int64(b.Gol2), true
	case domain.SortGol3:
		return int64(a.Gol3), int64(b.Gol3), true
	case domain.SortGol4:
		return int64(a.Gol4), int64(b.Gol4), true
	case domain.SortGol5:
		return int64(a.Gol5), int64(b.Gol5), true
	case domain.SortTotalLalin:
		return int64(a.TotalLalin), int64(b.TotalLalin), true
	}
	return 0, 0, false
}
