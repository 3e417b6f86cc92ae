package migrations

import (
	"context"
	"database/sql"
)

// The schema evolved across several historical deployments, so every change
// is guarded by an explicit existence check against information_schema
// instead of trusting the recorded migration version alone. Re-running any
// migration against a database that already carries the change is a no-op.

func tableExists(ctx context.Context, tx *sql.Tx, table string) (bool, error) {
	const q = `SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ?`
	var n int
	if err := tx.QueryRowContext(ctx, q, table).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func columnExists(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	const q = `SELECT COUNT(*) FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ? AND column_name = ?`
	var n int
	if err := tx.QueryRowContext(ctx, q, table, column).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func indexExists(ctx context.Context, tx *sql.Tx, table, index string) (bool, error) {
	const q = `SELECT COUNT(*) FROM information_schema.statistics
		WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ?`
	var n int
	if err := tx.QueryRowContext(ctx, q, table, index).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func addColumnIfMissing(ctx context.Context, tx *sql.Tx, table, column, definition string) error {
	exists, err := columnExists(ctx, tx, table, column)
	if err != nil || exists {
		return err
	}
	_, err = tx.ExecContext(ctx, "ALTER TABLE `"+table+"` ADD COLUMN `"+column+"` "+definition)
	return err
}

func addIndexIfMissing(ctx context.Context, tx *sql.Tx, table, index, columns string) error {
	exists, err := indexExists(ctx, tx, table, index)
	if err != nil || exists {
		return err
	}
	_, err = tx.ExecContext(ctx, "CREATE INDEX `"+index+"` ON `"+table+"` ("+columns+")")
	return err
}

func dropColumnIfPresent(ctx context.Context, tx *sql.Tx, table, column string) error {
	exists, err := columnExists(ctx, tx, table, column)
	if err != nil || !exists {
		return err
	}
	_, err = tx.ExecContext(ctx, "ALTER TABLE `"+table+"` DROP COLUMN `"+column+"`")
	return err
}
