package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateInitialTables, downCreateInitialTables)
}

func upCreateInitialTables(ctx context.Context, tx *sql.Tx) error {
	if exists, err := tableExists(ctx, tx, "users"); err != nil {
		return err
	} else if !exists {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE users (
				user_id VARCHAR(64) NOT NULL,
				username VARCHAR(64) NOT NULL,
				email VARCHAR(255) NOT NULL DEFAULT '',
				password_hash VARCHAR(255) NOT NULL DEFAULT '',
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				last_login DOUBLE NULL,
				PRIMARY KEY (user_id)
			)`); err != nil {
			return err
		}
	}

	if exists, err := tableExists(ctx, tx, "content"); err != nil {
		return err
	} else if !exists {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE content (
				content_id VARCHAR(64) NOT NULL,
				uploader_id VARCHAR(64) NOT NULL DEFAULT '',
				title VARCHAR(255) NOT NULL DEFAULT '',
				description TEXT,
				file_path VARCHAR(1024),
				content_type VARCHAR(64),
				uploaded_at DOUBLE NOT NULL DEFAULT 0,
				authenticity_score DOUBLE NOT NULL DEFAULT 0,
				current_tags TEXT,
				PRIMARY KEY (content_id)
			)`); err != nil {
			return err
		}
	}
	if err := addIndexIfMissing(ctx, tx, "content", "ix_content_uploader_id", "uploader_id"); err != nil {
		return err
	}

	if exists, err := tableExists(ctx, tx, "feedback"); err != nil {
		return err
	} else if !exists {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE feedback (
				id BIGINT NOT NULL AUTO_INCREMENT,
				content_id VARCHAR(64) NOT NULL DEFAULT '',
				user_id VARCHAR(64) NOT NULL DEFAULT '',
				event_type VARCHAR(32) NOT NULL DEFAULT '',
				rating INT NOT NULL DEFAULT 0,
				comment TEXT,
				timestamp DOUBLE NOT NULL DEFAULT 0,
				PRIMARY KEY (id)
			)`); err != nil {
			return err
		}
	}
	if err := addIndexIfMissing(ctx, tx, "feedback", "ix_feedback_content_id", "content_id"); err != nil {
		return err
	}
	if err := addIndexIfMissing(ctx, tx, "feedback", "ix_feedback_user_id", "user_id"); err != nil {
		return err
	}
	return nil
}

func downCreateInitialTables(ctx context.Context, tx *sql.Tx) error {
	// Destructive rollback; only sensible on empty environments.
	for _, table := range []string{"feedback", "content", "users"} {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS `"+table+"`"); err != nil {
			return err
		}
	}
	return nil
}
