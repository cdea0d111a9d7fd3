// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/resmaker/internal/ports/secondary"
)

const generationColumns = "id, group_name, file_name, version_token, key_count, qualified_keys, up_digest, down_digest, operator, archived, created_at"

// GenerationRepository implements secondary.GenerationRepository with SQLite.
type GenerationRepository struct {
	db *sql.DB
}

// NewGenerationRepository creates a new SQLite generation repository.
func NewGenerationRepository(db *sql.DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

// Create persists a new generation record.
func (r *GenerationRepository) Create(ctx context.Context, record *secondary.GenerationRecord) error {
	var operator sql.NullString
	if record.Operator != "" {
		operator = sql.NullString{String: record.Operator, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO generations (id, group_name, file_name, version_token, key_count, qualified_keys, up_digest, down_digest, operator, archived)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.GroupName, record.FileName, record.VersionToken, record.KeyCount,
		record.QualifiedKeys, record.UpDigest, record.DownDigest, operator, record.Archived,
	)
	if err != nil {
		return fmt.Errorf("failed to create generation: %w", err)
	}

	return nil
}

// GetByID retrieves a generation by its ID.
func (r *GenerationRepository) GetByID(ctx context.Context, id string) (*secondary.GenerationRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+generationColumns+" FROM generations WHERE id = ?",
		id,
	)

	record, err := scanGeneration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("generation %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generation: %w", err)
	}

	return record, nil
}

// List retrieves generations newest first. limit <= 0 means no limit.
func (r *GenerationRepository) List(ctx context.Context, limit int) ([]*secondary.GenerationRecord, error) {
	query := "SELECT " + generationColumns + " FROM generations ORDER BY created_at DESC, id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var generations []*secondary.GenerationRecord
	for rows.Next() {
		record, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		generations = append(generations, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}

	return generations, nil
}

// GetNextID returns the next available generation ID.
func (r *GenerationRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM generations",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next generation ID: %w", err)
	}

	return fmt.Sprintf("GEN-%03d", maxID+1), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGeneration(s rowScanner) (*secondary.GenerationRecord, error) {
	var (
		operator  sql.NullString
		createdAt time.Time
	)

	record := &secondary.GenerationRecord{}
	err := s.Scan(
		&record.ID, &record.GroupName, &record.FileName, &record.VersionToken, &record.KeyCount,
		&record.QualifiedKeys, &record.UpDigest, &record.DownDigest, &operator, &record.Archived, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.Operator = operator.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// Ensure GenerationRepository implements the interface.
var _ secondary.GenerationRepository = (*GenerationRepository)(nil)
