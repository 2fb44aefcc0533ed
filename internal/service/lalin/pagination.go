package lalin

import "github.com/satriapw/tolldash/internal/domain"

// Paginate slices page number page (1-based) of size pageSize out of rows.
// Out-of-range pages yield an empty slice.
func Paginate(rows []domain.LalinTableRow, page, pageSize int) []domain.LalinTableRow {
	if page < 1 || pageSize < 1 {
		return []domain.LalinTableRow{}
	}

	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []domain.LalinTableRow{}
	}

	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}

	return rows[start:end]
}

// TotalPages reports the page count for total items at pageSize per page.
// An empty set still has one (empty) page.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}
