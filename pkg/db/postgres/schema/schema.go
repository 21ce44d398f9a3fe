// Package schema creates the database objects boardd depends on.
package schema

import (
	"context"

	_ "embed"

	kpool "github.com/opsboard/opsboard/pkg/conn/db/postgres/pool"
)

//go:embed schema.sql
var ddl string

// Apply creates tables and constraints if they do not exist yet.
//
// Statements are idempotent and run in a single transaction, so Apply
// is safe to run on every boot, even from competing boardd instances.
func Apply(ctx context.Context, p kpool.Pool) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, ddl); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
