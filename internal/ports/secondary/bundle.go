package secondary

import (
	"context"

	"github.com/example/resmaker/internal/core/bundle"
	"github.com/example/resmaker/internal/core/resource"
)

// BundleWriter defines the secondary port for packaging script pairs.
// Writes are all-or-nothing: on error no partial file is left behind.
type BundleWriter interface {
	// WriteFiles writes the up and down scripts as two files in dir.
	WriteFiles(ctx context.Context, dir string, b bundle.Bundle) ([]string, error)

	// WriteArchive writes both scripts into a single zip in dir.
	WriteArchive(ctx context.Context, dir string, b bundle.Bundle) (string, error)
}

// DescriptionStore defines the secondary port for resource description documents.
type DescriptionStore interface {
	// Load reads a description document (YAML or JSON).
	Load(ctx context.Context, path string) (resource.Description, error)

	// Save writes a description document, keeping the format implied by the path.
	Save(ctx context.Context, path string, desc resource.Description) error
}
