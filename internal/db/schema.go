package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh installs.
// It reflects the state after all migrations.
//
// This is the single source of truth for the schema. Tests load it through
// GetSchemaSQL() instead of declaring their own tables, so a repository that
// references a missing column fails with "no such column" at test time.
//
// When adding columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Generations (ledger of written script bundles)
CREATE TABLE IF NOT EXISTS generations (
	id TEXT PRIMARY KEY,
	group_name TEXT NOT NULL,
	file_name TEXT NOT NULL,
	version_token TEXT NOT NULL,
	key_count INTEGER NOT NULL CHECK(key_count > 0),
	qualified_keys TEXT NOT NULL,
	up_digest TEXT NOT NULL,
	down_digest TEXT NOT NULL,
	operator TEXT,
	archived INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_generations_group ON generations(group_name);
CREATE INDEX IF NOT EXISTS idx_generations_created ON generations(created_at);
`

// InitSchema creates the schema on a fresh database or migrates an existing one.
func InitSchema(database *sql.DB) error {
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	if tableCount > 0 {
		return RunMigrations(database)
	}

	// Fresh install: create the current schema and mark every migration applied.
	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := createVersionTable(database); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
