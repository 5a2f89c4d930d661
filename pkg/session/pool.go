package session

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/exauth/pkg/pg"
)

// Conn is a checked-out, request-exclusive database connection.
type Conn interface {
	pg.Querier
	Release()
}

// Pool abstracts per-request connection checkout so the Resolver can be
// exercised against a stub pool in tests.
type Pool interface {
	Acquire(ctx context.Context) (Conn, error)
}

type pgxPool struct {
	pool *pgxpool.Pool
}

// NewPool wraps a pgx connection pool as a session Pool.
func NewPool(pool *pgxpool.Pool) Pool {
	return &pgxPool{pool: pool}
}

func (p *pgxPool) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}
