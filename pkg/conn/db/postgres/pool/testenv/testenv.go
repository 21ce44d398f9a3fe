// Package testenv connects tests to a disposable postgres database.
//
// The database is addressed by the environment variable BOARDD_TEST_DB_URI.
// Tests depending on this package are skipped when it is not set.
package testenv

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"

	kpool "github.com/opsboard/opsboard/pkg/conn/db/postgres/pool"
	"github.com/opsboard/opsboard/pkg/db/postgres/schema"
)

type pg struct {
	pool *pgxpool.Pool
}

func (p *pg) GetPool(ctx context.Context, t *testing.T) kpool.Pool {
	t.Cleanup(func() {
		t.Helper()
		ClearTables(ctx, p.pool, t)
	})

	ClearTables(ctx, p.pool, t)
	return kpool.Wrap(p.pool)
}

// PoolBroaker is a interface to get a pool.
type PoolBroaker interface {
	// GetPool returns a pool.
	//
	// Tables are cleaned up before returning and after t.
	GetPool(ctx context.Context, t *testing.T) kpool.Pool
}

// NewPoolBroaker returns a PoolBroaker, or skips t when no test
// database is configured.
//
// The schema is applied before the first pool is handed out.
func NewPoolBroaker(ctx context.Context, t *testing.T) PoolBroaker {
	t.Helper()

	dburi := os.Getenv("BOARDD_TEST_DB_URI")
	if dburi == "" {
		t.Skip("BOARDD_TEST_DB_URI is not set")
	}

	pool, err := pgxpool.Connect(ctx, dburi)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)

	if err := schema.Apply(ctx, kpool.Wrap(pool)); err != nil {
		t.Fatal(err)
	}

	return &pg{pool: pool}
}

func ClearTables(ctx context.Context, p *pgxpool.Pool, t *testing.T) {
	t.Helper()

	// every other table hangs off organizations via cascading FKs.
	if _, err := p.Exec(ctx, `truncate "organizations" cascade`); err != nil {
		t.Errorf("fail to clean-up tables.: %v", err)
	}
}
