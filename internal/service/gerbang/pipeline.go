package gerbang

import (
	"sort"
	"strings"

	"github.com/satriapw/tolldash/internal/domain"
)

// Filter keeps gates whose name or branch name contains the query,
// case-insensitively. Blank queries pass everything through.
func Filter(gerbangs []domain.Gerbang, query string) []domain.Gerbang {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return gerbangs
	}

	filtered := make([]domain.Gerbang, 0, len(gerbangs))
	for _, g := range gerbangs {
		if strings.Contains(strings.ToLower(g.NamaGerbang), query) ||
			strings.Contains(strings.ToLower(g.NamaCabang), query) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// Sort returns a stably sorted copy. Field names follow the wire form of the
// record; an empty or unknown field keeps the input order.
func Sort(gerbangs []domain.Gerbang, cfg domain.GerbangSortConfig) []domain.Gerbang {
	if cfg.Field == "" {
		return gerbangs
	}

	sorted := make([]domain.Gerbang, len(gerbangs))
	copy(sorted, gerbangs)

	desc := cfg.Direction == domain.SortDesc
	sort.SliceStable(sorted, func(i, j int) bool {
		c := compare(&sorted[i], &sorted[j], cfg.Field)
		if desc {
			return c > 0
		}
		return c < 0
	})

	return sorted
}

func compare(a, b *domain.Gerbang, field string) int {
	switch field {
	case "id":
		return compareInt64(a.ID, b.ID)
	case "IdCabang":
		return compareInt64(a.IDCabang, b.IDCabang)
	case "NamaGerbang":
		return strings.Compare(strings.ToLower(a.NamaGerbang), strings.ToLower(b.NamaGerbang))
	case "NamaCabang":
		return strings.Compare(strings.ToLower(a.NamaCabang), strings.ToLower(b.NamaCabang))
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Paginate slices the 1-based page of size pageSize; out-of-range pages
// yield an empty slice.
func Paginate(gerbangs []domain.Gerbang, page, pageSize int) []domain.Gerbang {
	if page < 1 || pageSize < 1 {
		return []domain.Gerbang{}
	}

	start := (page - 1) * pageSize
	if start >= len(gerbangs) {
		return []domain.Gerbang{}
	}

	end := start + pageSize
	if end > len(gerbangs) {
		end = len(gerbangs)
	}

	return gerbangs[start:end]
}

// Process runs the listing pipeline. TotalItems is the filtered count before
// pagination so callers can derive the page count.
func Process(gerbangs []domain.Gerbang, cfg domain.GerbangListConfig) *domain.GerbangViewData {
	if cfg.Page < 1 {
		cfg.Page = 1
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 10
	}

	filtered := Filter(gerbangs, cfg.SearchQuery)
	sorted := Sort(filtered, cfg.Sort)
	paginated := Paginate(sorted, cfg.Page, cfg.PageSize)

	totalPages := (len(filtered) + cfg.PageSize - 1) / cfg.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return &domain.GerbangViewData{
		PaginatedData: paginated,
		TotalItems:    len(filtered),
		TotalPages:    totalPages,
	}
}
