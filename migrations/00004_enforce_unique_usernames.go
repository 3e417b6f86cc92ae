package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upEnforceUniqueUsernames, downEnforceUniqueUsernames)
}

// Early deployments indexed usernames without a uniqueness constraint. This
// rebuilds the index as unique; it fails loudly if duplicate usernames exist
// so the conflict can be resolved by hand rather than silently dropped.
func upEnforceUniqueUsernames(ctx context.Context, tx *sql.Tx) error {
	unique, err := uniqueIndexExists(ctx, tx, "users", "ix_users_username")
	if err != nil {
		return err
	}
	if unique {
		return nil
	}
	if exists, err := indexExists(ctx, tx, "users", "ix_users_username"); err != nil {
		return err
	} else if exists {
		if _, err := tx.ExecContext(ctx, "DROP INDEX ix_users_username ON users"); err != nil {
			return err
		}
	}
	_, err = tx.ExecContext(ctx, "CREATE UNIQUE INDEX ix_users_username ON users (username)")
	return err
}

func downEnforceUniqueUsernames(ctx context.Context, tx *sql.Tx) error {
	if exists, err := indexExists(ctx, tx, "users", "ix_users_username"); err != nil {
		return err
	} else if exists {
		if _, err := tx.ExecContext(ctx, "DROP INDEX ix_users_username ON users"); err != nil {
			return err
		}
	}
	_, err := tx.ExecContext(ctx, "CREATE INDEX ix_users_username ON users (username)")
	return err
}

func uniqueIndexExists(ctx context.Context, tx *sql.Tx, table, index string) (bool, error) {
	const q = `SELECT COUNT(*) FROM information_schema.statistics
		WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ? AND non_unique = 0`
	var n int
	if err := tx.QueryRowContext(ctx, q, table, index).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
