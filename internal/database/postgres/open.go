package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/Ascendant_Go/internal/database"
)

// Options configures Open
type Options struct {
	URL         string
	MaxConns    int
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
	SkipMigrate bool
}

// Open connects, applies migrations and returns a ready Store
func Open(ctx context.Context, opts Options) (*Store, error) {
	pool, err := database.NewPool(ctx, opts.URL, opts.MaxConns, opts.MaxIdleTime, opts.MaxLifetime)
	if err != nil {
		return nil, err
	}
	if !opts.SkipMigrate {
		if err := Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return NewStore(pool), nil
}

// Migrate runs the bundled goose migrations against pool
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := database.Migrate(ctx, db, database.DialectPostgres); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	return nil
}
