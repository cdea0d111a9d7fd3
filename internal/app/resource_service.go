package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/example/resmaker/internal/core/bundle"
	"github.com/example/resmaker/internal/core/resource"
	"github.com/example/resmaker/internal/core/sqlgen"
	"github.com/example/resmaker/internal/ctxutil"
	"github.com/example/resmaker/internal/ports/primary"
	"github.com/example/resmaker/internal/ports/secondary"
)

// ResourceServiceImpl implements the ResourceService interface.
type ResourceServiceImpl struct {
	generator      *sqlgen.Generator
	writer         secondary.BundleWriter
	generationRepo secondary.GenerationRepository
	now            func() time.Time
}

// NewResourceService creates a new ResourceService with injected dependencies.
// generationRepo may be nil, in which case no history is recorded.
func NewResourceService(generator *sqlgen.Generator, writer secondary.BundleWriter, generationRepo secondary.GenerationRepository) *ResourceServiceImpl {
	return &ResourceServiceImpl{
		generator:      generator,
		writer:         writer,
		generationRepo: generationRepo,
		now:            time.Now,
	}
}

// Validate checks a description, including the bundle file name.
func (s *ResourceServiceImpl) Validate(ctx context.Context, desc resource.Description) error {
	return resource.Validate(desc)
}

// Preview renders the scripts without writing anything.
func (s *ResourceServiceImpl) Preview(ctx context.Context, desc resource.Description) (*primary.Scripts, error) {
	if err := resource.ValidateContent(desc); err != nil {
		return nil, err
	}
	return s.render(desc), nil
}

// Generate validates, renders and packages a description.
func (s *ResourceServiceImpl) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	if err := resource.Validate(req.Description); err != nil {
		return nil, err
	}

	scripts := s.render(req.Description)
	b := bundle.New(s.now(), req.Description.FileName, sqlgen.ScriptPair{Up: scripts.Up, Down: scripts.Down})

	resp := &primary.GenerateResponse{
		Scripts:      scripts,
		VersionToken: b.Token,
	}
	if req.Archive {
		resp.PlannedFiles = []string{b.Names.Archive}
	} else {
		resp.PlannedFiles = []string{b.Names.Up, b.Names.Down}
	}

	if req.DryRun {
		return resp, nil
	}

	files, err := s.write(ctx, req, b)
	if err != nil {
		return nil, fmt.Errorf("failed to write bundle: %w", err)
	}
	resp.Files = files

	if req.SkipHistory || s.generationRepo == nil {
		return resp, nil
	}

	// The bundle is already on disk; a ledger failure must not hide that.
	id, err := s.record(ctx, req, b, scripts)
	if err != nil {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("bundle written but not recorded in history: %v", err))
		return resp, nil
	}
	resp.GenerationID = id

	return resp, nil
}

// Helper methods

func (s *ResourceServiceImpl) render(desc resource.Description) *primary.Scripts {
	pair := s.generator.Generate(desc)
	return &primary.Scripts{
		Up:            pair.Up,
		Down:          pair.Down,
		QualifiedKeys: s.generator.Plan(desc).QualifiedNames(),
	}
}

func (s *ResourceServiceImpl) write(ctx context.Context, req primary.GenerateRequest, b bundle.Bundle) ([]string, error) {
	dir := req.OutputDir
	if dir == "" {
		dir = "."
	}
	if req.Archive {
		path, err := s.writer.WriteArchive(ctx, dir, b)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}
	return s.writer.WriteFiles(ctx, dir, b)
}

func (s *ResourceServiceImpl) record(ctx context.Context, req primary.GenerateRequest, b bundle.Bundle, scripts *primary.Scripts) (string, error) {
	nextID, err := s.generationRepo.GetNextID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to generate generation ID: %w", err)
	}

	record := &secondary.GenerationRecord{
		ID:            nextID,
		GroupName:     sqlgen.NormalizeName(req.Description.GroupName),
		FileName:      bundle.BaseFileName(req.Description.FileName),
		VersionToken:  b.Token,
		KeyCount:      len(req.Description.Keys),
		QualifiedKeys: strings.Join(scripts.QualifiedKeys, ","),
		UpDigest:      ScriptDigest(scripts.Up),
		DownDigest:    ScriptDigest(scripts.Down),
		Operator:      ctxutil.OperatorFromContext(ctx),
		Archived:      req.Archive,
	}

	if err := s.generationRepo.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to create generation: %w", err)
	}

	return nextID, nil
}

// ScriptDigest returns the xxh3 fingerprint of a script as 16 hex digits.
func ScriptDigest(script string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(script))
}

// Ensure ResourceServiceImpl implements the interface.
var _ primary.ResourceService = (*ResourceServiceImpl)(nil)
