package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/store/xpgx"
)

var userColumns = []string{"id", "email", "username", "password_hash", "created_at", "updated_at"}

func (s *store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"email": email})

	selected, err := xpgx.Getx[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CreateUser(ctx context.Context, user *domain.User) error {
	query := builder().Insert(tableUsers).
		Columns(userColumns[:4]...).
		Values(user.ID, user.Email, user.Username, user.UserPassword.Hash)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
