package primary

import "context"

// HistoryService defines the primary port for the generation ledger.
type HistoryService interface {
	// ListGenerations retrieves the most recent generations, newest first.
	// A limit of zero or less returns all of them.
	ListGenerations(ctx context.Context, limit int) ([]*Generation, error)

	// GetGeneration retrieves a generation by ID.
	GetGeneration(ctx context.Context, id string) (*Generation, error)
}

// Generation represents a recorded generation at the port boundary.
type Generation struct {
	ID            string
	GroupName     string
	FileName      string
	VersionToken  string
	KeyCount      int
	QualifiedKeys []string
	UpDigest      string
	DownDigest    string
	Operator      string
	Archived      bool
	CreatedAt     string
}
