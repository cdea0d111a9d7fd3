// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// GenerationRepository defines the secondary port for the generation ledger.
type GenerationRepository interface {
	// Create persists a new generation record.
	Create(ctx context.Context, record *GenerationRecord) error

	// GetByID retrieves a generation by its ID.
	// Returns an error wrapping ErrNotFound when it does not exist.
	GetByID(ctx context.Context, id string) (*GenerationRecord, error)

	// List retrieves generations newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*GenerationRecord, error)

	// GetNextID returns the next available generation ID (GEN-001, ...).
	GetNextID(ctx context.Context) (string, error)
}

// GenerationRecord represents a generation as stored in persistence.
type GenerationRecord struct {
	ID            string
	GroupName     string
	FileName      string
	VersionToken  string
	KeyCount      int
	QualifiedKeys string // comma-separated, block order
	UpDigest      string
	DownDigest    string
	Operator      string
	Archived      bool
	CreatedAt     string
}
