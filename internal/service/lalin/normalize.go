package lalin

import (
	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/datefmt"
)

// groupKey identifies one (gerbang, gardu, shift, tanggal) accumulation
// group. A struct key rules out the collisions a concatenated string key
// could produce.
type groupKey struct {
	idGerbang int64
	idGardu   int64
	shift     int
	date      string
}

type groupMeta struct {
	ruas       string
	gerbang    string
	gardu      int64
	shift      int
	hari       string
	tanggal    string
	tanggalRaw string
}

// golSums accumulates per-golongan sums for one payment cluster. Index 0
// holds golongan 1.
type golSums [5]int

func (g *golSums) add(golongan, amount int) {
	if golongan >= 1 && golongan <= 5 {
		g[golongan-1] += amount
	}
}

func (g *golSums) total() int {
	return g[0] + g[1] + g[2] + g[3] + g[4]
}

type groupAccum struct {
	tunai golSums
	etoll golSums
	flo   golSums
	ktp   golSums
}

func (a *groupAccum) sums(cluster domain.PaymentCluster) *golSums {
	switch cluster {
	case domain.ClusterTunai:
		return &a.tunai
	case domain.ClusterEToll:
		return &a.etoll
	case domain.ClusterFlo:
		return &a.flo
	default:
		return &a.ktp
	}
}

// emitOrder is the cluster order rows are emitted in within one group.
var emitOrder = []domain.PaymentCluster{
	domain.ClusterTunai, domain.ClusterEToll, domain.ClusterFlo, domain.ClusterKTP,
}

// Normalize collapses raw transaction rows into report table rows: one row
// per (group x payment cluster) whose five-golongan sum is positive. Group
// order follows first appearance in the input; ids are sequential within one
// normalization. Gates missing from the lookup get fallback names instead of
// failing the run.
func Normalize(rows []domain.LalinItem, lookup domain.GerbangLookup, fmtr *datefmt.Formatter) []domain.LalinTableRow {
	groups := make(map[groupKey]*groupAccum, len(rows))
	meta := make(map[groupKey]groupMeta, len(rows))
	order := make([]groupKey, 0, len(rows))

	for i := range rows {
		row := &rows[i]
		key := groupKey{
			idGerbang: row.IDGerbang,
			idGardu:   row.IDGardu,
			shift:     row.Shift,
			date:      fmtr.APIDate(row.Tanggal),
		}

		accum, ok := groups[key]
		if !ok {
			accum = &groupAccum{}
			groups[key] = accum
			meta[key] = groupMeta{
				ruas:       lookup.RuasName(row.IDGerbang),
				gerbang:    lookup.GerbangName(row.IDGerbang),
				gardu:      row.IDGardu,
				shift:      row.Shift,
				hari:       fmtr.DayName(row.Tanggal),
				tanggal:    fmtr.DisplayDate(row.Tanggal),
				tanggalRaw: key.date,
			}
			order = append(order, key)
		}

		if v := row.Tunai; v > 0 {
			accum.tunai.add(row.Golongan, v)
		}
		if v := row.ETollTotal(); v > 0 {
			accum.etoll.add(row.Golongan, v)
		}
		if v := row.EFlo; v > 0 {
			accum.flo.add(row.Golongan, v)
		}
		if v := row.KTPTotal(); v > 0 {
			accum.ktp.add(row.Golongan, v)
		}
	}

	result := make([]domain.LalinTableRow, 0, len(order))
	id := 0

	for _, key := range order {
		accum := groups[key]
		m := meta[key]

		for _, cluster := range emitOrder {
			sums := accum.sums(cluster)
			total := sums.total()
			if total == 0 {
				// no traffic for this cluster in this group, no row
				continue
			}

			id++
			result = append(result, domain.LalinTableRow{
				ID:               id,
				Ruas:             m.ruas,
				Gerbang:          m.gerbang,
				Gardu:            m.gardu,
				Shift:            m.shift,
				Hari:             m.hari,
				Tanggal:          m.tanggal,
				TanggalRaw:       m.tanggalRaw,
				MetodePembayaran: cluster,
				Gol1:             sums[0],
				Gol2:             sums[1],
				Gol3:             sums[2],
				Gol4:             sums[3],
				Gol5:             sums[4],
				TotalLalin:       total,
			})
		}
	}

	return result
}
