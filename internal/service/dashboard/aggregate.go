package dashboard

import (
	"fmt"
	"sort"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/datefmt"
)

// FilterByDate keeps raw rows whose machine date equals date; empty date
// passes everything through.
func FilterByDate(rows []domain.LalinItem, date string, fmtr *datefmt.Formatter) []domain.LalinItem {
	if date == "" {
		return rows
	}

	filtered := make([]domain.LalinItem, 0, len(rows))
	for i := range rows {
		if fmtr.APIDate(rows[i].Tanggal) == date {
			filtered = append(filtered, rows[i])
		}
	}
	return filtered
}

// CountActiveGates counts distinct gate ids present in the rows.
func CountActiveGates(rows []domain.LalinItem) int {
	seen := make(map[int64]struct{}, 16)
	for i := range rows {
		seen[rows[i].IDGerbang] = struct{}{}
	}
	return len(seen)
}

// CalculateKpi computes the headline block. Dominant selections iterate the
// declared cluster order and ascending shift numbers, first strictly-greater
// value wins, so tie-breaks are deterministic.
func CalculateKpi(rows []domain.LalinItem, totalActiveGates int) domain.DashboardKpi {
	clusterTotals := make(map[domain.PaymentCluster]int, 4)
	shiftTotals := make(map[int]int, 4)
	totalTraffic := 0

	for i := range rows {
		row := &rows[i]
		clusterTotals[domain.ClusterEToll] += row.ETollTotal()
		clusterTotals[domain.ClusterFlo] += row.EFlo
		clusterTotals[domain.ClusterTunai] += row.Tunai
		clusterTotals[domain.ClusterKTP] += row.KTPTotal()

		rowTotal := row.TotalTraffic()
		totalTraffic += rowTotal
		shiftTotals[row.Shift] += rowTotal
	}

	dominantCluster := domain.ClusterEToll
	maxClusterCount := -1
	for _, cluster := range domain.ClusterOrder {
		if count := clusterTotals[cluster]; count > maxClusterCount {
			maxClusterCount = count
			dominantCluster = cluster
		}
	}

	dominantShift := "Shift 1"
	maxShiftCount := -1
	for _, shift := range sortedShifts(shiftTotals) {
		if count := shiftTotals[shift]; count > maxShiftCount {
			maxShiftCount = count
			dominantShift = fmt.Sprintf("Shift %d", shift)
		}
	}

	return domain.DashboardKpi{
		TotalTraffic:           totalTraffic,
		DominantPaymentCluster: dominantCluster,
		DominantShift:          dominantShift,
		TotalActiveGates:       totalActiveGates,
	}
}

// AggregatePaymentMethods sums traffic per named payment method. Every
// method appears in the breakdown even with zero traffic.
func AggregatePaymentMethods(rows []domain.LalinItem) []domain.PaymentMethodData {
	totals := make(map[domain.PaymentMethod]int, len(domain.MethodOrder))
	for i := range rows {
		for _, method := range domain.MethodOrder {
			totals[method] += rows[i].MethodAmount(method)
		}
	}

	result := make([]domain.PaymentMethodData, 0, len(domain.MethodOrder))
	for _, method := range domain.MethodOrder {
		result = append(result, domain.PaymentMethodData{
			Method:  method,
			Cluster: domain.MethodCluster[method],
			Count:   totals[method],
		})
	}
	return result
}

// AggregateShiftTraffic sums traffic per shift, ascending by shift number.
func AggregateShiftTraffic(rows []domain.LalinItem) []domain.ShiftTraffic {
	totals := make(map[int]int, 4)
	for i := range rows {
		totals[rows[i].Shift] += rows[i].TotalTraffic()
	}

	result := make([]domain.ShiftTraffic, 0, len(totals))
	for _, shift := range sortedShifts(totals) {
		result = append(result, domain.ShiftTraffic{
			ShiftName: fmt.Sprintf("Shift %d", shift),
			Traffic:   totals[shift],
		})
	}
	return result
}

// AggregateGateTraffic sums traffic per gate, resolved to names via the
// lookup, descending by traffic, truncated to topN. Ties keep first-seen
// gate order.
func AggregateGateTraffic(rows []domain.LalinItem, lookup domain.GerbangLookup, topN int) []domain.GateTraffic {
	totals := make(map[int64]int, 16)
	order := make([]int64, 0, 16)

	for i := range rows {
		id := rows[i].IDGerbang
		if _, ok := totals[id]; !ok {
			order = append(order, id)
		}
		totals[id] += rows[i].TotalTraffic()
	}

	result := make([]domain.GateTraffic, 0, len(order))
	for _, id := range order {
		result = append(result, domain.GateTraffic{
			GateName: lookup.GerbangName(id),
			Traffic:  totals[id],
		})
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].Traffic > result[j].Traffic })

	if topN > 0 && len(result) > topN {
		result = result[:topN]
	}
	return result
}

// AggregateBranchTraffic sums traffic per resolved ruas name, descending by
// traffic, no truncation.
func AggregateBranchTraffic(rows []domain.LalinItem, lookup domain.GerbangLookup) []domain.BranchTraffic {
	totals := make(map[string]int, 8)
	order := make([]string, 0, 8)

	for i := range rows {
		name := lookup.RuasName(rows[i].IDGerbang)
		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name] += rows[i].TotalTraffic()
	}

	result := make([]domain.BranchTraffic, 0, len(order))
	for _, name := range order {
		result = append(result, domain.BranchTraffic{BranchName: name, Traffic: totals[name]})
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].Traffic > result[j].Traffic })
	return result
}

func sortedShifts(totals map[int]int) []int {
	shifts := make([]int, 0, len(totals))
	for shift := range totals {
		shifts = append(shifts, shift)
	}
	sort.Ints(shifts)
	return shifts
}
