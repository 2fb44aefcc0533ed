package lalin

import "github.com/satriapw/tolldash/internal/domain"

// CalculateKpi sums TotalLalin per payment cluster over the given rows.
func CalculateKpi(rows []domain.LalinTableRow) domain.LalinKpiSummary {
	var kpi domain.LalinKpiSummary

	for _, row := range rows {
		switch row.MetodePembayaran {
		case domain.ClusterTunai:
			kpi.TotalTunai += row.TotalLalin
		case domain.ClusterEToll:
			kpi.TotalEToll += row.TotalLalin
		case domain.ClusterFlo:
			kpi.TotalFlo += row.TotalLalin
		case domain.ClusterKTP:
			kpi.TotalKTP += row.TotalLalin
		}
		kpi.TotalAll += row.TotalLalin
	}

	return kpi
}

// CalculateSubtotals sums TotalLalin per ruas, in first-seen branch order.
func CalculateSubtotals(rows []domain.LalinTableRow) []domain.LalinSubtotal {
	index := make(map[string]int, 8)
	subtotals := make([]domain.LalinSubtotal, 0, 8)

	for _, row := range rows {
		i, ok := index[row.Ruas]
		if !ok {
			i = len(subtotals)
			index[row.Ruas] = i
			subtotals = append(subtotals, domain.LalinSubtotal{Ruas: row.Ruas})
		}
		subtotals[i].Total += row.TotalLalin
	}

	return subtotals
}

// CalculateGrandTotal sums TotalLalin over the given rows.
func CalculateGrandTotal(rows []domain.LalinTableRow) int {
	total := 0
	for _, row := range rows {
		total += row.TotalLalin
	}
	return total
}
