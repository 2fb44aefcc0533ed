package lalin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satriapw/tolldash/internal/domain"
)

func filterRows() []domain.LalinTableRow {
	return []domain.LalinTableRow{
		{ID: 1, Ruas: "Jagorawi", Gerbang: "Ciawi", TanggalRaw: "2024-01-01", MetodePembayaran: domain.ClusterTunai, TotalLalin: 10},
		{ID: 2, Ruas: "Jagorawi", Gerbang: "Cibubur", TanggalRaw: "2024-01-02", MetodePembayaran: domain.ClusterEToll, TotalLalin: 20},
		{ID: 3, Ruas: "Japek", Gerbang: "Halim", TanggalRaw: "2024-01-01", MetodePembayaran: domain.ClusterFlo, TotalLalin: 5},
		{ID: 4, Ruas: "Japek", Gerbang: "Karawang", TanggalRaw: "2024-01-02", MetodePembayaran: domain.ClusterKTP, TotalLalin: 2},
	}
}

func TestFilterByDate(t *testing.T) {
	rows := filterRows()

	got := FilterByDate(rows, "2024-01-01")
	assert.Len(t, got, 2)
	for _, row := range got {
		assert.Equal(t, "2024-01-01", row.TanggalRaw)
	}

	assert.Len(t, FilterByDate(rows, ""), 4)
	assert.Empty(t, FilterByDate(rows, "2030-12-31"))
}

func TestFilterByTab(t *testing.T) {
	rows := filterRows()

	tests := []struct {
		tab  domain.LalinTab
		want []int
	}{
		{domain.TabSemua, []int{1, 2, 3, 4}},
		{domain.TabTunai, []int{1}},
		{domain.TabEToll, []int{2}},
		{domain.TabFlo, []int{3}},
		{domain.TabKTP, []int{4}},
		{domain.TabGabungan, []int{1, 2, 3}},
	}

	for _, tc := range tests {
		got := FilterByTab(rows, tc.tab)
		ids := make([]int, 0, len(got))
		for _, row := range got {
			ids = append(ids, row.ID)
		}
		assert.Equal(t, tc.want, ids, "tab %q", tc.tab)
	}
}

func TestFilterBySearchCaseInsensitive(t *testing.T) {
	rows := filterRows()

	got := FilterBySearch(rows, "CIA")
	assert.Len(t, got, 1)
	assert.Equal(t, "Ciawi", got[0].Gerbang)

	// matches ruas too
	assert.Len(t, FilterBySearch(rows, "japek"), 2)

	// blank and whitespace-only queries pass everything
	assert.Len(t, FilterBySearch(rows, ""), 4)
	assert.Len(t, FilterBySearch(rows, "   "), 4)
}

func TestFilterIdempotence(t *testing.T) {
	rows := filterRows()

	once := FilterByDate(rows, "2024-01-01")
	twice := FilterByDate(once, "2024-01-01")
	assert.Equal(t, once, twice)

	onceTab := FilterByTab(rows, domain.TabGabungan)
	assert.Equal(t, onceTab, FilterByTab(onceTab, domain.TabGabungan))

	onceSearch := FilterBySearch(rows, "jago")
	assert.Equal(t, onceSearch, FilterBySearch(onceSearch, "jago"))
}
