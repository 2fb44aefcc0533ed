package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/datefmt"
)

var day = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func dashGerbangs() []domain.Gerbang {
	return []domain.Gerbang{
		{ID: 1, IDCabang: 9, NamaGerbang: "Ciawi", NamaCabang: "Jagorawi"},
		{ID: 2, IDCabang: 9, NamaGerbang: "Cibubur", NamaCabang: "Jagorawi"},
		{ID: 3, IDCabang: 7, NamaGerbang: "Halim", NamaCabang: "Japek"},
	}
}

func TestCalculateKpi(t *testing.T) {
	rows := []domain.LalinItem{
		{IDGerbang: 1, Shift: 1, Tanggal: day, Golongan: 1, Tunai: 10, EBca: 30},
		{IDGerbang: 2, Shift: 2, Tanggal: day, Golongan: 2, EFlo: 5, DinasOpr: 1},
	}

	kpi := CalculateKpi(rows, CountActiveGates(rows))

	assert.Equal(t, 46, kpi.TotalTraffic)
	assert.Equal(t, domain.ClusterEToll, kpi.DominantPaymentCluster)
	assert.Equal(t, "Shift 1", kpi.DominantShift)
	assert.Equal(t, 2, kpi.TotalActiveGates)
}

func TestCalculateKpiTieBreakUsesDeclaredOrder(t *testing.T) {
	// Flo and Tunai tie; E-Toll precedes both in the declared order but has
	// less traffic, so Flo wins as the first maximum encountered.
	rows := []domain.LalinItem{
		{IDGerbang: 1, Shift: 1, Tanggal: day, Golongan: 1, EBca: 1, EFlo: 5, Tunai: 5},
	}

	kpi := CalculateKpi(rows, 1)
	assert.Equal(t, domain.ClusterFlo, kpi.DominantPaymentCluster)

	// shift tie goes to the lowest shift number
	rows = []domain.LalinItem{
		{IDGerbang: 1, Shift: 2, Tanggal: day, Golongan: 1, Tunai: 5},
		{IDGerbang: 1, Shift: 1, Tanggal: day, Golongan: 1, Tunai: 5},
	}
	kpi = CalculateKpi(rows, 1)
	assert.Equal(t, "Shift 1", kpi.DominantShift)
}

func TestCalculateKpiEmptyInput(t *testing.T) {
	kpi := CalculateKpi(nil, 0)

	assert.Zero(t, kpi.TotalTraffic)
	assert.Equal(t, domain.ClusterEToll, kpi.DominantPaymentCluster)
	assert.Equal(t, "Shift 1", kpi.DominantShift)
	assert.Zero(t, kpi.TotalActiveGates)
}

func TestAggregatePaymentMethods(t *testing.T) {
	rows := []domain.LalinItem{
		{IDGerbang: 1, Shift: 1, Tanggal: day, Golongan: 1, EBca: 3, EBri: 2, Tunai: 7, DinasMitra: 1},
	}

	methods := AggregatePaymentMethods(rows)
	require.Len(t, methods, len(domain.MethodOrder))

	byMethod := make(map[domain.PaymentMethod]domain.PaymentMethodData)
	for _, m := range methods {
		byMethod[m.Method] = m
	}

	assert.Equal(t, 3, byMethod[domain.MethodBCA].Count)
	assert.Equal(t, domain.ClusterEToll, byMethod[domain.MethodBCA].Cluster)
	assert.Equal(t, 1, byMethod[domain.MethodKTP].Count)
	assert.Equal(t, domain.ClusterKTP, byMethod[domain.MethodKTP].Cluster)
	assert.Equal(t, 7, byMethod[domain.MethodTunai].Count)
	// zero-traffic methods stay in the breakdown
	assert.Zero(t, byMethod[domain.MethodMega].Count)
}

func TestAggregateShiftTrafficSortedAscending(t *testing.T) {
	rows := []domain.LalinItem{
		{IDGerbang: 1, Shift: 3, Tanggal: day, Golongan: 1, Tunai: 1},
		{IDGerbang: 1, Shift: 1, Tanggal: day, Golongan: 1, Tunai: 2},
		{IDGerbang: 1, Shift: 2, Tanggal: day, Golongan: 1, Tunai: 3},
	}

	shifts := AggregateShiftTraffic(rows)
	require.Len(t, shifts, 3)
	assert.Equal(t, "Shift 1", shifts[0].ShiftName)
	assert.Equal(t, "Shift 2", shifts[1].ShiftName)
	assert.Equal(t, "Shift 3", shifts[2].ShiftName)
}

func TestAggregateGateTrafficTopN(t *testing.T) {
	lookup := domain.NewGerbangLookup(dashGerbangs())
	rows := []domain.LalinItem{
		{IDGerbang: 1, Shift: 1, Tanggal: day, Golongan: 1, Tunai: 10},
		{IDGerbang: 2, Shift: 1, Tanggal: day, Golongan: 1, Tunai: 30},
		{IDGerbang: 3, Shift: 1, Tanggal: day, Golongan: 1, Tunai: 20},
	}

	gates := AggregateGateTraffic(rows, lookup, 2)
	require.Len(t, gates, 2)
	assert.Equal(t, domain.GateTraffic{GateName: "Cibubur", Traffic: 30}, gates[0])
	assert.Equal(t, domain.GateTraffic{GateName: "Halim", Traffic: 20}, gates[1])
}

func TestAggregateBranchTraffic(t *testing.T) {
	lookup := domain.NewGerbangLookup(dashGerbangs())
	rows := []domain.LalinItem{
		{IDGerbang: 1, Shift: 1, Tanggal: day, Golongan: 1, Tunai: 10},
		{IDGerbang: 2, Shift: 1, Tanggal: day, Golongan: 1, Tunai: 5},
		{IDGerbang: 3, Shift: 1, Tanggal: day, Golongan: 1, Tunai: 40},
		{IDGerbang: 99, Shift: 1, Tanggal: day, Golongan: 1, Tunai: 1},
	}

	branches := AggregateBranchTraffic(rows, lookup)
	require.Len(t, branches, 3)
	assert.Equal(t, domain.BranchTraffic{BranchName: "Japek", Traffic: 40}, branches[0])
	assert.Equal(t, domain.BranchTraffic{BranchName: "Jagorawi", Traffic: 15}, branches[1])
	assert.Equal(t, domain.BranchTraffic{BranchName: "Cabang 99", Traffic: 1}, branches[2])
}

func TestFilterByDate(t *testing.T) {
	fmtr := datefmt.NewFormatter("en")
	rows := []domain.LalinItem{
		{IDGerbang: 1, Shift: 1, Tanggal: day, Golongan: 1, Tunai: 1},
		{IDGerbang: 1, Shift: 1, Tanggal: day.AddDate(0, 0, 1), Golongan: 1, Tunai: 2},
	}

	got := FilterByDate(rows, "2024-01-01", fmtr)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Tunai)

	assert.Len(t, FilterByDate(rows, "", fmtr), 2)
}
