package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/logger"
	"github.com/satriapw/tolldash/internal/pkg/store/xpgx"
)

var lalinColumns = []string{
	"id", "id_cabang", "id_gerbang", "id_gardu", "tanggal", "shift", "golongan",
	"id_asal_gerbang", "tunai", "e_mandiri", "e_bri", "e_bni", "e_bca", "e_nobu",
	"e_dki", "e_mega", "e_flo", "dinas_opr", "dinas_mitra", "dinas_kary",
	"created_at", "updated_at",
}

// ListLalinsOpts narrows the raw listing. The pipelines filter in memory, so
// only the coarse date bound is pushed down.
type ListLalinsOpts struct {
	Date *time.Time
}

func (s *store) ListLalins(ctx context.Context, opts ListLalinsOpts) ([]domain.LalinItem, error) {
	query := builder().Select(lalinColumns...).
		From(tableLalins).
		OrderBy("tanggal, id_gerbang, id_gardu, shift, golongan")

	if opts.Date != nil {
		query = query.Where(sq.Eq{"tanggal": opts.Date.Format("2006-01-02")})
	}

	selected, err := xpgx.Selectx[domain.LalinItem](ctx, s.pool, query)
	if err != nil {
		logger.Errorf(ctx, "ListLalins: %s", err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpsertLalins(ctx context.Context, rows []domain.LalinItem) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := builder().Insert(tableLalins).
		Columns(lalinColumns[:len(lalinColumns)-2]...)

	for _, r := range rows {
		query = query.Values(
			r.ID, r.IDCabang, r.IDGerbang, r.IDGardu, r.Tanggal, r.Shift, r.Golongan,
			r.IDAsalGerbang, r.Tunai, r.EMandiri, r.EBri, r.EBni, r.EBca, r.ENobu,
			r.EDKI, r.EMega, r.EFlo, r.DinasOpr, r.DinasMitra, r.DinasKary,
		)
	}

	query = query.Suffix(`
on conflict (id_gerbang, id_gardu, tanggal, shift, golongan)
do update
set
	tunai = excluded.tunai,
	e_mandiri = excluded.e_mandiri,
	e_bri = excluded.e_bri,
	e_bni = excluded.e_bni,
	e_bca = excluded.e_bca,
	e_nobu = excluded.e_nobu,
	e_dki = excluded.e_dki,
	e_mega = excluded.e_mega,
	e_flo = excluded.e_flo,
	dinas_opr = excluded.dinas_opr,
	dinas_mitra = excluded.dinas_mitra,
	dinas_kary = excluded.dinas_kary,
	updated_at = now()`)

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		logger.Errorf(ctx, "UpsertLalins: %s", err.Error())
		return 0, fmt.Errorf("UpsertLalins: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
