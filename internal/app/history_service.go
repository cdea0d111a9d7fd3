package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/resmaker/internal/ports/primary"
	"github.com/example/resmaker/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	generationRepo secondary.GenerationRepository
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(generationRepo secondary.GenerationRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		generationRepo: generationRepo,
	}
}

// ListGenerations retrieves the most recent generations, newest first.
func (s *HistoryServiceImpl) ListGenerations(ctx context.Context, limit int) ([]*primary.Generation, error) {
	records, err := s.generationRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}

	generations := make([]*primary.Generation, len(records))
	for i, r := range records {
		generations[i] = s.recordToGeneration(r)
	}
	return generations, nil
}

// GetGeneration retrieves a generation by ID.
func (s *HistoryServiceImpl) GetGeneration(ctx context.Context, id string) (*primary.Generation, error) {
	record, err := s.generationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.recordToGeneration(record), nil
}

// Helper methods

func (s *HistoryServiceImpl) recordToGeneration(r *secondary.GenerationRecord) *primary.Generation {
	var keys []string
	if r.QualifiedKeys != "" {
		keys = strings.Split(r.QualifiedKeys, ",")
	}
	return &primary.Generation{
		ID:            r.ID,
		GroupName:     r.GroupName,
		FileName:      r.FileName,
		VersionToken:  r.VersionToken,
		KeyCount:      r.KeyCount,
		QualifiedKeys: keys,
		UpDigest:      r.UpDigest,
		DownDigest:    r.DownDigest,
		Operator:      r.Operator,
		Archived:      r.Archived,
		CreatedAt:     r.CreatedAt,
	}
}

// Ensure HistoryServiceImpl implements the interface.
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
