// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/example/resmaker/internal/core/bundle"
	"github.com/example/resmaker/internal/ports/secondary"
)

// BundleWriter implements secondary.BundleWriter on the local filesystem.
// Files are staged under a temporary name and renamed into place, so a failed
// write never leaves a half-written script behind.
type BundleWriter struct{}

// NewBundleWriter creates a new filesystem bundle writer.
func NewBundleWriter() *BundleWriter {
	return &BundleWriter{}
}

// WriteFiles writes the up and down scripts as two files in dir.
func (w *BundleWriter) WriteFiles(ctx context.Context, dir string, b bundle.Bundle) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	upTmp, err := stage(ctx, dir, []byte(b.Scripts.Up))
	if err != nil {
		return nil, err
	}
	downTmp, err := stage(ctx, dir, []byte(b.Scripts.Down))
	if err != nil {
		os.Remove(upTmp)
		return nil, err
	}

	upPath := filepath.Join(dir, b.Names.Up)
	downPath := filepath.Join(dir, b.Names.Down)

	if err := os.Rename(upTmp, upPath); err != nil {
		os.Remove(upTmp)
		os.Remove(downTmp)
		return nil, fmt.Errorf("failed to write %s: %w", b.Names.Up, err)
	}
	if err := os.Rename(downTmp, downPath); err != nil {
		os.Remove(upPath)
		os.Remove(downTmp)
		return nil, fmt.Errorf("failed to write %s: %w", b.Names.Down, err)
	}

	return []string{upPath, downPath}, nil
}

// WriteArchive writes both scripts into a single zip in dir.
func (w *BundleWriter) WriteArchive(ctx context.Context, dir string, b bundle.Bundle) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := zipBundle(b)
	if err != nil {
		return "", err
	}

	tmp, err := stage(ctx, dir, data)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, b.Names.Archive)
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to write %s: %w", b.Names.Archive, err)
	}

	return path, nil
}

// zipBundle packs the up and down scripts, stamped with the bundle's version time.
func zipBundle(b bundle.Bundle) ([]byte, error) {
	// Zero time when the token does not parse.
	modified, _ := time.Parse(bundle.TokenLayout, b.Token)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []struct{ name, body string }{
		{b.Names.Up, b.Scripts.Up},
		{b.Names.Down, b.Scripts.Down},
	}
	for _, e := range entries {
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", e.name, err)
		}
		if _, err := f.Write([]byte(e.body)); err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish archive: %w", err)
	}
	return buf.Bytes(), nil
}

// stage writes data to a temporary file in dir and returns its path.
func stage(ctx context.Context, dir string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.CreateTemp(dir, ".resmaker-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(f.Name(), 0644); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to set file mode: %w", err)
	}
	return f.Name(), nil
}

// Ensure BundleWriter implements the interface.
var _ secondary.BundleWriter = (*BundleWriter)(nil)
