package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/constants"
	"github.com/satriapw/tolldash/internal/pkg/logger"
	"github.com/satriapw/tolldash/internal/pkg/store/xpgx"
)

var gerbangColumns = []string{"id", "id_cabang", "nama_gerbang", "nama_cabang", "created_at", "updated_at"}

func (s *store) ListGerbangs(ctx context.Context) ([]domain.Gerbang, error) {
	query := builder().Select(gerbangColumns...).
		From(tableGerbangs).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.Gerbang](ctx, s.pool, query)
	if err != nil {
		logger.Errorf(ctx, "ListGerbangs: %s", err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetGerbangByID(ctx context.Context, id int64) (*domain.Gerbang, error) {
	query := builder().Select(gerbangColumns...).
		From(tableGerbangs).
		Where(sq.Eq{"id": id})

	selected, err := xpgx.Getx[domain.Gerbang](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) InsertGerbang(ctx context.Context, gerbang *domain.Gerbang) (*domain.Gerbang, error) {
	query := builder().Insert(tableGerbangs).
		Columns("id", "id_cabang", "nama_gerbang", "nama_cabang").
		Values(gerbang.ID, gerbang.IDCabang, gerbang.NamaGerbang, gerbang.NamaCabang).
		Suffix("on conflict (id) do nothing")

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, constants.ErrGerbangExists
	}

	return s.GetGerbangByID(ctx, gerbang.ID)
}

func (s *store) UpdateGerbang(ctx context.Context, gerbang *domain.Gerbang) (*domain.Gerbang, error) {
	query := builder().Update(tableGerbangs).
		Set("id_cabang", gerbang.IDCabang).
		Set("nama_gerbang", gerbang.NamaGerbang).
		Set("nama_cabang", gerbang.NamaCabang).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": gerbang.ID})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, constants.ErrGerbangNotFound
	}

	return s.GetGerbangByID(ctx, gerbang.ID)
}

func (s *store) DeleteGerbang(ctx context.Context, id, idCabang int64) error {
	query := builder().Delete(tableGerbangs).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Eq{"id_cabang": idCabang},
		})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrGerbangNotFound
	}

	return nil
}
