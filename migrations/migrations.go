// Package migrations owns the database schema. Migrations are written in Go
// so each step can verify the current state of the schema before changing it,
// which keeps reruns against partially migrated databases safe.
package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Run applies all pending migrations in order.
func Run(ctx context.Context, db *sql.DB) error {
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
