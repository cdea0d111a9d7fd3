// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the single point where the database schema is loaded for tests.
// Setup uses db.GetSchemaSQL() so tests run against the authoritative schema.
// Do not declare CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/resmaker/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Each pooled connection to :memory: is a separate database.
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedGeneration inserts a test generation with an explicit creation time.
func seedGeneration(t *testing.T, db *sql.DB, id, group, createdAt string) string {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO generations (id, group_name, file_name, version_token, key_count, qualified_keys, up_digest, down_digest, operator, archived, created_at)
		VALUES (?, ?, 'combo_orders', '20250108.1626', 1, ?, '0000000000000001', '0000000000000002', 'maria', 0, ?)`,
		id, group, group+".ChooseCombo", createdAt,
	)
	if err != nil {
		t.Fatalf("failed to seed generation: %v", err)
	}
	return id
}
