package lalin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satriapw/tolldash/internal/domain"
)

func TestSortNumericField(t *testing.T) {
	rows := []domain.LalinTableRow{
		{ID: 1, TotalLalin: 5},
		{ID: 2, TotalLalin: 30},
		{ID: 3, TotalLalin: 12},
	}

	asc := SortRows(rows, domain.LalinSortConfig{Field: domain.SortTotalLalin, Direction: domain.SortAsc})
	assert.Equal(t, []int{5, 12, 30}, []int{asc[0].TotalLalin, asc[1].TotalLalin, asc[2].TotalLalin})

	desc := SortRows(rows, domain.LalinSortConfig{Field: domain.SortTotalLalin, Direction: domain.SortDesc})
	assert.Equal(t, []int{30, 12, 5}, []int{desc[0].TotalLalin, desc[1].TotalLalin, desc[2].TotalLalin})

	// input untouched
	assert.Equal(t, 5, rows[0].TotalLalin)
}

func TestSortStringFieldCaseInsensitive(t *testing.T) {
	rows := []domain.LalinTableRow{
		{Ruas: "japek"},
		{Ruas: "Jagorawi"},
		{Ruas: "JAPEK"},
	}

	got := SortRows(rows, domain.LalinSortConfig{Field: domain.SortRuas, Direction: domain.SortAsc})
	assert.Equal(t, "Jagorawi", got[0].Ruas)
	// equal keys keep their pre-sort relative order
	assert.Equal(t, "japek", got[1].Ruas)
	assert.Equal(t, "JAPEK", got[2].Ruas)
}

func TestSortTanggalUsesMachineForm(t *testing.T) {
	// display form would order these wrong (02/01 before 10/12 lexically holds,
	// but across years it breaks); the machine form must win
	rows := []domain.LalinTableRow{
		{ID: 1, Tanggal: "02/01/2024", TanggalRaw: "2024-01-02"},
		{ID: 2, Tanggal: "10/12/2023", TanggalRaw: "2023-12-10"},
	}

	got := SortRows(rows, domain.LalinSortConfig{Field: domain.SortTanggal, Direction: domain.SortAsc})
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 1, got[1].ID)
}

func TestSortStability(t *testing.T) {
	rows := []domain.LalinTableRow{
		{ID: 1, Shift: 2},
		{ID: 2, Shift: 1},
		{ID: 3, Shift: 2},
		{ID: 4, Shift: 1},
		{ID: 5, Shift: 2},
	}

	got := SortRows(rows, domain.LalinSortConfig{Field: domain.SortShift, Direction: domain.SortAsc})

	ids := make([]int, len(got))
	for i, row := range got {
		ids[i] = row.ID
	}
	assert.Equal(t, []int{2, 4, 1, 3, 5}, ids)
}
