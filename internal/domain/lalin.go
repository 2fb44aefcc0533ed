package domain

import "time"

// PaymentCluster groups the raw payment columns into the four buckets the
// report operates on.
type PaymentCluster string

const (
	ClusterTunai PaymentCluster = "Tunai"
	ClusterEToll PaymentCluster = "E-Toll"
	ClusterFlo   PaymentCluster = "Flo"
	ClusterKTP   PaymentCluster = "KTP"
)

// ClusterOrder is the declared iteration order for anything that walks the
// clusters. Tie-breaks in "dominant" selections depend on it, so it is fixed
// here instead of being left to map iteration.
var ClusterOrder = []PaymentCluster{ClusterEToll, ClusterFlo, ClusterTunai, ClusterKTP}

// PaymentMethod is a single named payment column (bank e-toll products, Flo,
// cash, dinas traffic collapsed under KTP).
type PaymentMethod string

const (
	MethodBCA     PaymentMethod = "BCA"
	MethodBRI     PaymentMethod = "BRI"
	MethodBNI     PaymentMethod = "BNI"
	MethodDKI     PaymentMethod = "DKI"
	MethodMandiri PaymentMethod = "Mandiri"
	MethodMega    PaymentMethod = "Mega"
	MethodNobu    PaymentMethod = "Nobu"
	MethodFlo     PaymentMethod = "Flo"
	MethodKTP     PaymentMethod = "KTP"
	MethodTunai   PaymentMethod = "Tunai"
)

// MethodOrder is the declared order for per-method breakdowns.
var MethodOrder = []PaymentMethod{
	MethodBCA, MethodBRI, MethodBNI, MethodDKI,
	MethodMandiri, MethodMega, MethodNobu,
	MethodFlo, MethodKTP, MethodTunai,
}

// MethodCluster maps every payment method to its owning cluster. The mapping
// partitions the raw columns, so totals are conserved across the split.
var MethodCluster = map[PaymentMethod]PaymentCluster{
	MethodBCA:     ClusterEToll,
	MethodBRI:     ClusterEToll,
	MethodBNI:     ClusterEToll,
	MethodDKI:     ClusterEToll,
	MethodMandiri: ClusterEToll,
	MethodMega:    ClusterEToll,
	MethodNobu:    ClusterEToll,
	MethodFlo:     ClusterFlo,
	MethodKTP:     ClusterKTP,
	MethodTunai:   ClusterTunai,
}

// LalinItem is one raw transaction row as stored: one
// (gerbang, gardu, shift, tanggal, golongan) combination with vehicle counts
// per payment column. Counts are non-negative; absent columns scan/unmarshal
// to zero, which is exactly the coalescing the pipeline wants.
type LalinItem struct {
	ID            int64     `db:"id" json:"id"`
	IDCabang      int64     `db:"id_cabang" json:"IdCabang"`
	IDGerbang     int64     `db:"id_gerbang" json:"IdGerbang"`
	IDGardu       int64     `db:"id_gardu" json:"IdGardu"`
	Tanggal       time.Time `db:"tanggal" json:"Tanggal"`
	Shift         int       `db:"shift" json:"Shift"`
	Golongan      int       `db:"golongan" json:"Golongan"`
	IDAsalGerbang int64     `db:"id_asal_gerbang" json:"IdAsalGerbang"`

	Tunai    int `db:"tunai" json:"Tunai"`
	EMandiri int `db:"e_mandiri" json:"eMandiri"`
	EBri     int `db:"e_bri" json:"eBri"`
	EBni     int `db:"e_bni" json:"eBni"`
	EBca     int `db:"e_bca" json:"eBca"`
	ENobu    int `db:"e_nobu" json:"eNobu"`
	EDKI     int `db:"e_dki" json:"eDKI"`
	EMega    int `db:"e_mega" json:"eMega"`
	EFlo     int `db:"e_flo" json:"eFlo"`

	DinasOpr   int `db:"dinas_opr" json:"DinasOpr"`
	DinasMitra int `db:"dinas_mitra" json:"DinasMitra"`
	DinasKary  int `db:"dinas_kary" json:"DinasKary"`

	CreatedAt time.Time `db:"created_at" json:"CreatedAt"`
	UpdatedAt time.Time `db:"updated_at" json:"UpdatedAt"`
}

// ETollTotal sums the bank e-toll columns.
func (l *LalinItem) ETollTotal() int {
	return l.EMandiri + l.EBri + l.EBni + l.EBca + l.ENobu + l.EDKI + l.EMega
}

// KTPTotal sums the dinas columns (operational, partner, employee traffic).
func (l *LalinItem) KTPTotal() int {
	return l.DinasOpr + l.DinasMitra + l.DinasKary
}

// TotalTraffic is the grand row total across all payment clusters.
func (l *LalinItem) TotalTraffic() int {
	return l.Tunai + l.ETollTotal() + l.EFlo + l.KTPTotal()
}

// MethodAmount returns the raw amount for a single payment method.
func (l *LalinItem) MethodAmount(m PaymentMethod) int {
	switch m {
	case MethodBCA:
		return l.EBca
	case MethodBRI:
		return l.EBri
	case MethodBNI:
		return l.EBni
	case MethodDKI:
		return l.EDKI
	case MethodMandiri:
		return l.EMandiri
	case MethodMega:
		return l.EMega
	case MethodNobu:
		return l.ENobu
	case MethodFlo:
		return l.EFlo
	case MethodKTP:
		return l.KTPTotal()
	case MethodTunai:
		return l.Tunai
	}
	return 0
}
