package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAddScriptAndAuditTables, downAddScriptAndAuditTables)
}

func upAddScriptAndAuditTables(ctx context.Context, tx *sql.Tx) error {
	if exists, err := tableExists(ctx, tx, "scripts"); err != nil {
		return err
	} else if !exists {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE scripts (
				script_id VARCHAR(64) NOT NULL,
				content_id VARCHAR(64) NOT NULL DEFAULT '',
				user_id VARCHAR(64) NOT NULL DEFAULT '',
				title VARCHAR(255) NOT NULL,
				script_content TEXT NOT NULL,
				script_type VARCHAR(32) NOT NULL DEFAULT '',
				file_path VARCHAR(1024),
				created_at DOUBLE NOT NULL DEFAULT 0,
				used_for_generation TINYINT(1) NOT NULL DEFAULT 0,
				version VARCHAR(32) NOT NULL DEFAULT '',
				script_metadata TEXT,
				PRIMARY KEY (script_id)
			)`); err != nil {
			return err
		}
	}
	for _, ix := range []struct{ name, columns string }{
		{"ix_scripts_content_id", "content_id"},
		{"ix_scripts_user_id", "user_id"},
		{"ix_scripts_created_at", "created_at"},
	} {
		if err := addIndexIfMissing(ctx, tx, "scripts", ix.name, ix.columns); err != nil {
			return err
		}
	}

	if exists, err := tableExists(ctx, tx, "audit_logs"); err != nil {
		return err
	} else if !exists {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE audit_logs (
				id BIGINT NOT NULL AUTO_INCREMENT,
				user_id VARCHAR(64) NOT NULL DEFAULT '',
				action VARCHAR(64) NOT NULL,
				resource_type VARCHAR(64) NOT NULL,
				resource_id VARCHAR(64) NOT NULL,
				timestamp DOUBLE NOT NULL,
				ip_address VARCHAR(45) NOT NULL DEFAULT '',
				user_agent VARCHAR(512) NOT NULL DEFAULT '',
				request_id VARCHAR(64) NOT NULL DEFAULT '',
				details TEXT,
				status VARCHAR(32) NOT NULL DEFAULT '',
				PRIMARY KEY (id)
			)`); err != nil {
			return err
		}
	}
	for _, ix := range []struct{ name, columns string }{
		{"ix_audit_logs_user_id", "user_id"},
		{"ix_audit_logs_action", "action"},
		{"ix_audit_logs_timestamp", "timestamp"},
		{"ix_audit_logs_request_id", "request_id"},
	} {
		if err := addIndexIfMissing(ctx, tx, "audit_logs", ix.name, ix.columns); err != nil {
			return err
		}
	}
	return nil
}

func downAddScriptAndAuditTables(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS audit_logs"); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS scripts")
	return err
}
