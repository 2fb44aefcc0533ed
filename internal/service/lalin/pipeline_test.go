package lalin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/datefmt"
)

func TestPipelineKTPTabWithNoKTPTraffic(t *testing.T) {
	rows := []domain.LalinItem{
		{IDGerbang: 1, IDGardu: 1, Shift: 1, Tanggal: jan1, Golongan: 1, Tunai: 10},
		{IDGerbang: 1, IDGardu: 1, Shift: 1, Tanggal: jan1, Golongan: 2, EBca: 5},
	}

	p := NewPipeline(datefmt.NewFormatter("en"))
	view := p.Run(rows, testGerbangs(), domain.LalinReportConfig{FilterTab: domain.TabKTP})

	assert.Empty(t, view.Rows)
	assert.Empty(t, view.PaginatedRows)
	assert.Zero(t, view.TotalRows)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, domain.LalinKpiSummary{}, view.Kpi)
	assert.Empty(t, view.Subtotals)
	assert.Zero(t, view.GrandTotal)
}

func TestPipelineAggregateInvariant(t *testing.T) {
	rows := []domain.LalinItem{
		{IDGerbang: 1, IDGardu: 1, Shift: 1, Tanggal: jan1, Golongan: 1, Tunai: 3, EBri: 2, EFlo: 1, DinasOpr: 4},
		{IDGerbang: 2, IDGardu: 2, Shift: 2, Tanggal: jan1, Golongan: 2, Tunai: 7, EMandiri: 9},
		{IDGerbang: 3, IDGardu: 1, Shift: 3, Tanggal: jan1, Golongan: 5, EMega: 11, DinasKary: 6},
	}

	p := NewPipeline(datefmt.NewFormatter("en"))
	view := p.Run(rows, testGerbangs(), domain.LalinReportConfig{})

	kpiSum := view.Kpi.TotalTunai + view.Kpi.TotalEToll + view.Kpi.TotalFlo + view.Kpi.TotalKTP
	assert.Equal(t, view.GrandTotal, kpiSum)
	assert.Equal(t, view.Kpi.TotalAll, view.GrandTotal)

	subtotalSum := 0
	for _, sub := range view.Subtotals {
		subtotalSum += sub.Total
	}
	assert.Equal(t, view.GrandTotal, subtotalSum)
}

func TestPipelineAggregatesTrackFilterNotPage(t *testing.T) {
	rows := []domain.LalinItem{
		{IDGerbang: 1, IDGardu: 1, Shift: 1, Tanggal: jan1, Golongan: 1, Tunai: 10},
		{IDGerbang: 2, IDGardu: 1, Shift: 1, Tanggal: jan1, Golongan: 1, Tunai: 20},
		{IDGerbang: 3, IDGardu: 1, Shift: 1, Tanggal: jan1, Golongan: 1, Tunai: 30},
	}

	p := NewPipeline(datefmt.NewFormatter("en"))
	view := p.Run(rows, testGerbangs(), domain.LalinReportConfig{Page: 1, PageSize: 1})

	require.Len(t, view.PaginatedRows, 1)
	// grand total covers the whole filtered set, not just the visible page
	assert.Equal(t, 60, view.GrandTotal)
	assert.Equal(t, 3, view.TotalRows)
	assert.Equal(t, 3, view.TotalPages)
}

func TestPipelineSubtotalsFirstSeenOrder(t *testing.T) {
	rows := []domain.LalinItem{
		{IDGerbang: 3, IDGardu: 1, Shift: 1, Tanggal: jan1, Golongan: 1, Tunai: 5},  // Japek
		{IDGerbang: 1, IDGardu: 1, Shift: 1, Tanggal: jan1, Golongan: 1, Tunai: 10}, // Jagorawi
		{IDGerbang: 2, IDGardu: 1, Shift: 1, Tanggal: jan1, Golongan: 1, Tunai: 20}, // Jagorawi
	}

	p := NewPipeline(datefmt.NewFormatter("en"))
	view := p.Run(rows, testGerbangs(), domain.LalinReportConfig{})

	require.Len(t, view.Subtotals, 2)
	assert.Equal(t, domain.LalinSubtotal{Ruas: "Japek", Total: 5}, view.Subtotals[0])
	assert.Equal(t, domain.LalinSubtotal{Ruas: "Jagorawi", Total: 30}, view.Subtotals[1])
}

func TestPipelineMemoizesUnchangedInputs(t *testing.T) {
	rows := []domain.LalinItem{
		{IDGerbang: 1, IDGardu: 1, Shift: 1, Tanggal: jan1, Golongan: 1, Tunai: 10},
	}
	gerbangs := testGerbangs()
	cfg := domain.LalinReportConfig{FilterTab: domain.TabSemua}

	p := NewPipeline(datefmt.NewFormatter("en"))
	first := p.Run(rows, gerbangs, cfg)
	second := p.Run(rows, gerbangs, cfg)
	assert.Same(t, first, second)

	// changed parameters bypass the memo
	third := p.Run(rows, gerbangs, domain.LalinReportConfig{FilterTab: domain.TabTunai})
	assert.NotSame(t, first, third)
}
