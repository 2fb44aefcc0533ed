package store

import (
	"context"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	ListLalins(ctx context.Context, opts ListLalinsOpts) ([]domain.LalinItem, error)
	UpsertLalins(ctx context.Context, rows []domain.LalinItem) (int, error)

	ListGerbangs(ctx context.Context) ([]domain.Gerbang, error)
	GetGerbangByID(ctx context.Context, id int64) (*domain.Gerbang, error)
	InsertGerbang(ctx context.Context, gerbang *domain.Gerbang) (*domain.Gerbang, error)
	UpdateGerbang(ctx context.Context, gerbang *domain.Gerbang) (*domain.Gerbang, error)
	DeleteGerbang(ctx context.Context, id, idCabang int64) error

	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
