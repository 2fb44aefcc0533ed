package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrafficCalculators(t *testing.T) {
	row := LalinItem{
		Tunai:    10,
		EMandiri: 1, EBri: 2, EBni: 3, EBca: 4, ENobu: 5, EDKI: 6, EMega: 7,
		EFlo:     8,
		DinasOpr: 9, DinasMitra: 10, DinasKary: 11,
	}

	assert.Equal(t, 28, row.ETollTotal())
	assert.Equal(t, 30, row.KTPTotal())
	assert.Equal(t, 10+28+8+30, row.TotalTraffic())
}

func TestTrafficCalculatorsZeroRow(t *testing.T) {
	var row LalinItem

	assert.Zero(t, row.ETollTotal())
	assert.Zero(t, row.KTPTotal())
	assert.Zero(t, row.TotalTraffic())
}

func TestMethodClusterPartitionsTotal(t *testing.T) {
	row := LalinItem{
		Tunai:    3,
		EMandiri: 1, EBri: 1, EBni: 1, EBca: 1, ENobu: 1, EDKI: 1, EMega: 1,
		EFlo:     2,
		DinasOpr: 1, DinasMitra: 1, DinasKary: 1,
	}

	sum := 0
	for _, method := range MethodOrder {
		sum += row.MethodAmount(method)
	}
	assert.Equal(t, row.TotalTraffic(), sum)
}

func TestGerbangLookupFallback(t *testing.T) {
	lookup := NewGerbangLookup([]Gerbang{
		{ID: 1, IDCabang: 9, NamaGerbang: "Ciawi", NamaCabang: "Jagorawi"},
	})

	assert.Equal(t, "Ciawi", lookup.GerbangName(1))
	assert.Equal(t, "Jagorawi", lookup.RuasName(1))
	assert.Equal(t, "Gerbang 42", lookup.GerbangName(42))
	assert.Equal(t, "Cabang 42", lookup.RuasName(42))
}
