package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAddAdvancedFeatures, downAddAdvancedFeatures)
}

func upAddAdvancedFeatures(ctx context.Context, tx *sql.Tx) error {
	userColumns := []struct{ name, definition string }{
		{"email_verified", "TINYINT(1) NOT NULL DEFAULT 0"},
		{"verification_token", "VARCHAR(255) NOT NULL DEFAULT ''"},
		{"role", "VARCHAR(32) NOT NULL DEFAULT 'user'"},
	}
	for _, col := range userColumns {
		if err := addColumnIfMissing(ctx, tx, "users", col.name, col.definition); err != nil {
			return err
		}
	}

	contentColumns := []struct{ name, definition string }{
		{"duration_ms", "INT NOT NULL DEFAULT 0"},
		{"views", "INT NOT NULL DEFAULT 0"},
		{"likes", "INT NOT NULL DEFAULT 0"},
		{"shares", "INT NOT NULL DEFAULT 0"},
		{"status", "VARCHAR(32) NOT NULL DEFAULT 'active'"},
	}
	for _, col := range contentColumns {
		if err := addColumnIfMissing(ctx, tx, "content", col.name, col.definition); err != nil {
			return err
		}
	}
	if err := addIndexIfMissing(ctx, tx, "content", "ix_content_uploaded_at", "uploaded_at"); err != nil {
		return err
	}

	feedbackColumns := []struct{ name, definition string }{
		{"sentiment", "VARCHAR(32) NOT NULL DEFAULT ''"},
		{"engagement_score", "DOUBLE NOT NULL DEFAULT 0"},
		{"watch_time_ms", "INT NOT NULL DEFAULT 0"},
		{"reward", "DOUBLE NOT NULL DEFAULT 0"},
		{"ip_address", "VARCHAR(45) NOT NULL DEFAULT ''"},
	}
	for _, col := range feedbackColumns {
		if err := addColumnIfMissing(ctx, tx, "feedback", col.name, col.definition); err != nil {
			return err
		}
	}
	if err := addIndexIfMissing(ctx, tx, "feedback", "ix_feedback_timestamp", "timestamp"); err != nil {
		return err
	}

	if exists, err := tableExists(ctx, tx, "analytics"); err != nil {
		return err
	} else if !exists {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE analytics (
				id BIGINT NOT NULL AUTO_INCREMENT,
				user_id VARCHAR(64) NOT NULL DEFAULT '',
				event_type VARCHAR(64) NOT NULL DEFAULT '',
				content_id VARCHAR(64) NOT NULL DEFAULT '',
				metadata TEXT,
				timestamp DOUBLE NOT NULL DEFAULT 0,
				ip_address VARCHAR(45) NOT NULL DEFAULT '',
				PRIMARY KEY (id)
			)`); err != nil {
			return err
		}
	}
	if err := addIndexIfMissing(ctx, tx, "analytics", "ix_analytics_user_id", "user_id"); err != nil {
		return err
	}

	if exists, err := tableExists(ctx, tx, "system_logs"); err != nil {
		return err
	} else if !exists {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE system_logs (
				id BIGINT NOT NULL AUTO_INCREMENT,
				user_id VARCHAR(64) NOT NULL DEFAULT '',
				level VARCHAR(16) NOT NULL DEFAULT '',
				component VARCHAR(64) NOT NULL DEFAULT '',
				message TEXT,
				timestamp DOUBLE NOT NULL DEFAULT 0,
				PRIMARY KEY (id)
			)`); err != nil {
			return err
		}
	}
	return addIndexIfMissing(ctx, tx, "system_logs", "ix_system_logs_user_id", "user_id")
}

func downAddAdvancedFeatures(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS system_logs"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS analytics"); err != nil {
		return err
	}
	for _, col := range []string{"sentiment", "engagement_score", "watch_time_ms", "reward", "ip_address"} {
		if err := dropColumnIfPresent(ctx, tx, "feedback", col); err != nil {
			return err
		}
	}
	for _, col := range []string{"duration_ms", "views", "likes", "shares", "status"} {
		if err := dropColumnIfPresent(ctx, tx, "content", col); err != nil {
			return err
		}
	}
	for _, col := range []string{"email_verified", "verification_token", "role"} {
		if err := dropColumnIfPresent(ctx, tx, "users", col); err != nil {
			return err
		}
	}
	return nil
}
