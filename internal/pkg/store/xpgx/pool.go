// Package xpgx is a thin pgx pool wrapper that executes squirrel builders
// directly and scans into db-tagged structs.
package xpgx

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool struct {
	*pgxpool.Pool
}

// Dial opens a pool and verifies connectivity.
func Dial(ctx context.Context, dsn string) (*Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Pool{pool}, nil
}

// Execx runs a squirrel builder that returns no rows.
func (p *Pool) Execx(ctx context.Context, q squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return p.Exec(ctx, sql, args...)
}

// Selectx runs a squirrel builder and collects every row into T.
func Selectx[T any](ctx context.Context, p *Pool, q squirrel.Sqlizer) ([]T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
}

// Getx runs a squirrel builder expecting exactly one row.
func Getx[T any](ctx context.Context, p *Pool, q squirrel.Sqlizer) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, err
	}
	return &row, nil
}
