package lalin

import (
	"strings"

	"github.com/satriapw/tolldash/internal/domain"
)

// FilterByDate keeps rows whose machine date equals date. An empty date
// passes everything through.
func FilterByDate(rows []domain.LalinTableRow, date string) []domain.LalinTableRow {
	if date == "" {
		return rows
	}

	filtered := make([]domain.LalinTableRow, 0, len(rows))
	for _, row := range rows {
		if row.TanggalRaw == date {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// FilterByTab keeps rows whose payment cluster matches the selected tab.
// TabSemua passes everything, TabGabungan keeps E-Toll, Tunai and Flo.
func FilterByTab(rows []domain.LalinTableRow, tab domain.LalinTab) []domain.LalinTableRow {
	var keep func(domain.PaymentCluster) bool

	switch tab {
	case domain.TabTunai, domain.TabEToll, domain.TabFlo, domain.TabKTP:
		keep = func(c domain.PaymentCluster) bool { return string(c) == string(tab) }
	case domain.TabGabungan:
		keep = func(c domain.PaymentCluster) bool {
			return c == domain.ClusterEToll || c == domain.ClusterTunai || c == domain.ClusterFlo
		}
	default:
		return rows
	}

	filtered := make([]domain.LalinTableRow, 0, len(rows))
	for _, row := range rows {
		if keep(row.MetodePembayaran) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// FilterBySearch keeps rows whose ruas or gerbang name contains the query,
// case-insensitively. Blank queries pass everything through.
func FilterBySearch(rows []domain.LalinTableRow, query string) []domain.LalinTableRow {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	filtered := make([]domain.LalinTableRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Ruas), query) ||
			strings.Contains(strings.ToLower(row.Gerbang), query) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
