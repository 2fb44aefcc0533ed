package gerbang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriapw/tolldash/internal/domain"
)

func masterData() []domain.Gerbang {
	return []domain.Gerbang{
		{ID: 2, IDCabang: 9, NamaGerbang: "Jayakarta", NamaCabang: "Dalam Kota"},
		{ID: 1, IDCabang: 9, NamaGerbang: "Ciawi", NamaCabang: "Jagorawi"},
		{ID: 3, IDCabang: 7, NamaGerbang: "Halim", NamaCabang: "Japek"},
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	got := Filter(masterData(), "jaya")
	require.Len(t, got, 1)
	assert.Equal(t, "Jayakarta", got[0].NamaGerbang)

	// branch name matches too
	assert.Len(t, Filter(masterData(), "JAGORAWI"), 1)
	assert.Len(t, Filter(masterData(), ""), 3)
	assert.Len(t, Filter(masterData(), "  "), 3)
	assert.Empty(t, Filter(masterData(), "nonexistent"))
}

func TestSortByField(t *testing.T) {
	byID := Sort(masterData(), domain.GerbangSortConfig{Field: "id", Direction: domain.SortAsc})
	assert.Equal(t, int64(1), byID[0].ID)
	assert.Equal(t, int64(3), byID[2].ID)

	byName := Sort(masterData(), domain.GerbangSortConfig{Field: "NamaGerbang", Direction: domain.SortDesc})
	assert.Equal(t, "Jayakarta", byName[0].NamaGerbang)

	// empty field keeps input order
	same := Sort(masterData(), domain.GerbangSortConfig{})
	assert.Equal(t, masterData(), same)
}

func TestSortStability(t *testing.T) {
	data := []domain.Gerbang{
		{ID: 1, IDCabang: 9, NamaGerbang: "A"},
		{ID: 2, IDCabang: 7, NamaGerbang: "B"},
		{ID: 3, IDCabang: 9, NamaGerbang: "C"},
	}

	got := Sort(data, domain.GerbangSortConfig{Field: "IdCabang", Direction: domain.SortAsc})
	require.Len(t, got, 3)
	assert.Equal(t, int64(2), got[0].ID)
	// equal IdCabang keeps pre-sort order
	assert.Equal(t, int64(1), got[1].ID)
	assert.Equal(t, int64(3), got[2].ID)
}

func TestProcessReportsFilteredCount(t *testing.T) {
	view := Process(masterData(), domain.GerbangListConfig{
		SearchQuery: "ja",
		Page:        1,
		PageSize:    1,
	})

	// Jayakarta, Jagorawi (Ciawi) and Japek (Halim) all match "ja"
	assert.Equal(t, 3, view.TotalItems)
	assert.Equal(t, 3, view.TotalPages)
	assert.Len(t, view.PaginatedData, 1)
}

func TestProcessPaginationCompleteness(t *testing.T) {
	data := masterData()
	var reassembled []domain.Gerbang

	view := Process(data, domain.GerbangListConfig{Page: 1, PageSize: 2})
	for page := 1; page <= view.TotalPages; page++ {
		v := Process(data, domain.GerbangListConfig{Page: page, PageSize: 2})
		reassembled = append(reassembled, v.PaginatedData...)
	}

	assert.Equal(t, data, reassembled)
}

func TestProcessEmptyInput(t *testing.T) {
	view := Process(nil, domain.GerbangListConfig{Page: 1, PageSize: 10})

	assert.Empty(t, view.PaginatedData)
	assert.Zero(t, view.TotalItems)
	assert.Equal(t, 1, view.TotalPages)
}
