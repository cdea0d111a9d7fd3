package db

import (
	"database/sql"
	"fmt"
	"os"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_generations_table",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_archived_and_created_index",
		Up:      migrationV2,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations(database *sql.DB) error {
	if err := createVersionTable(database); err != nil {
		return err
	}

	var currentVersion int
	err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Fprintf(os.Stderr, "Running migration %d: %s\n", migration.Version, migration.Name)

		tx, err := database.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

func createVersionTable(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	return nil
}

// migrationV1 creates the generations ledger.
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
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
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_generations_group ON generations(group_name);
	`)
	if err != nil {
		return fmt.Errorf("failed to create generations table: %w", err)
	}
	return nil
}

// migrationV2 records whether a bundle was zipped and indexes the listing order.
func migrationV2(tx *sql.Tx) error {
	var count int
	err := tx.QueryRow("SELECT COUNT(*) FROM pragma_table_info('generations') WHERE name = 'archived'").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to inspect generations table: %w", err)
	}
	if count == 0 {
		if _, err := tx.Exec("ALTER TABLE generations ADD COLUMN archived INTEGER NOT NULL DEFAULT 0"); err != nil {
			return fmt.Errorf("failed to add archived column: %w", err)
		}
	}
	if _, err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_generations_created ON generations(created_at)"); err != nil {
		return fmt.Errorf("failed to create created_at index: %w", err)
	}
	return nil
}
