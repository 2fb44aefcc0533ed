package domain

import (
	"fmt"
	"time"
)

// Gerbang is one toll gate master record. IDs come from the upstream master
// data, NamaCabang denotes the ruas (branch) the gate belongs to.
type Gerbang struct {
	ID          int64     `db:"id" json:"id"`
	IDCabang    int64     `db:"id_cabang" json:"IdCabang"`
	NamaGerbang string    `db:"nama_gerbang" json:"NamaGerbang"`
	NamaCabang  string    `db:"nama_cabang" json:"NamaCabang"`
	CreatedAt   time.Time `db:"created_at" json:"CreatedAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"UpdatedAt"`
}

// GerbangLookup indexes gates by id. It is a derived read-only view, rebuilt
// whenever the master collection changes.
type GerbangLookup map[int64]Gerbang

// NewGerbangLookup builds the id index in one pass.
func NewGerbangLookup(gerbangs []Gerbang) GerbangLookup {
	lookup := make(GerbangLookup, len(gerbangs))
	for _, g := range gerbangs {
		lookup[g.ID] = g
	}
	return lookup
}

// GerbangName resolves a gate name. Report rows may reference gates missing
// from a stale master list, so unknown ids fall back to "Gerbang {id}".
func (l GerbangLookup) GerbangName(idGerbang int64) string {
	if g, ok := l[idGerbang]; ok {
		return g.NamaGerbang
	}
	return fmt.Sprintf("Gerbang %d", idGerbang)
}

// RuasName resolves the branch name of a gate, with the same fallback policy.
func (l GerbangLookup) RuasName(idGerbang int64) string {
	if g, ok := l[idGerbang]; ok {
		return g.NamaCabang
	}
	return fmt.Sprintf("Cabang %d", idGerbang)
}
