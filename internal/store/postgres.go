package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresKV stores each slot as one jsonb row. The service still does
// whole-slot read-modify-write; Postgres only supplies durability shared
// across restarts and hosts.
type PostgresKV struct {
	pool *pgxpool.Pool
}

func NewPostgresKV(ctx context.Context, pool *pgxpool.Pool) (*PostgresKV, error) {
	_, err := pool.Exec(ctx, `
		create table if not exists slots (
			name       text primary key,
			data       jsonb not null,
			updated_at timestamptz not null default now()
		)
	`)
	if err != nil {
		return nil, err
	}
	return &PostgresKV{pool: pool}, nil
}

func (p *PostgresKV) Get(ctx context.Context, slot string) ([]byte, bool, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, `select data from slots where name = $1`, slot).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (p *PostgresKV) Set(ctx context.Context, slot string, data []byte) error {
	_, err := p.pool.Exec(ctx, `
		insert into slots (name, data) values ($1, $2)
		on conflict (name) do update set data = excluded.data, updated_at = now()
	`, slot, data)
	return err
}
