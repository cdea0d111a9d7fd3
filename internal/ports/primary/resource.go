package primary

import (
	"context"

	"github.com/example/resmaker/internal/core/resource"
)

// ResourceService defines the primary port for script generation.
type ResourceService interface {
	// Validate checks a description, including the bundle file name.
	// Returns a resource.ValidationErrors when constraints are violated.
	Validate(ctx context.Context, desc resource.Description) error

	// Preview renders the scripts without writing anything.
	// The bundle file name is not required.
	Preview(ctx context.Context, desc resource.Description) (*Scripts, error)

	// Generate validates, renders and packages a description.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest contains parameters for generating a bundle.
type GenerateRequest struct {
	Description resource.Description
	OutputDir   string
	Archive     bool // write a single zip instead of two .sql files
	DryRun      bool // render and name the files, write nothing
	SkipHistory bool
}

// GenerateResponse contains the result of a generation.
type GenerateResponse struct {
	Scripts      *Scripts
	VersionToken string
	Files        []string // paths written (empty on dry run)
	PlannedFiles []string // file names of the bundle
	GenerationID string   // empty when history was skipped or failed
	Warnings     []string
}

// Scripts is a rendered script pair at the port boundary.
type Scripts struct {
	Up            string
	Down          string
	QualifiedKeys []string // in block order
}
