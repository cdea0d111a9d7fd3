package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/example/resmaker/internal/core/resource"
	"github.com/example/resmaker/internal/core/sqlgen"
	"github.com/example/resmaker/internal/core/translation"
	"github.com/example/resmaker/internal/ports/primary"
	"github.com/example/resmaker/internal/ports/secondary"
)

// DefaultTranslationConcurrency bounds the requests FillSecondary keeps open.
const DefaultTranslationConcurrency = 4

// ErrTranslatorNotConfigured is returned when no translation service is available.
var ErrTranslatorNotConfigured = errors.New("translation service not configured (set DEEPL_API_KEY)")

// TranslationServiceImpl implements the TranslationService interface.
type TranslationServiceImpl struct {
	translator  secondary.Translator
	targetLang  string
	concurrency int

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewTranslationService creates a new TranslationService with injected dependencies.
// translator may be nil; every call then fails with ErrTranslatorNotConfigured.
func NewTranslationService(translator secondary.Translator, targetLang string) *TranslationServiceImpl {
	return &TranslationServiceImpl{
		translator:  translator,
		targetLang:  targetLang,
		concurrency: DefaultTranslationConcurrency,
		inFlight:    make(map[string]struct{}),
	}
}

// Suggest translates the primary text of one key into the secondary locale.
// A key whose previous request is still running is reported as skipped.
func (s *TranslationServiceImpl) Suggest(ctx context.Context, req primary.SuggestRequest) (*primary.Suggestion, error) {
	if s.translator == nil {
		return nil, ErrTranslatorNotConfigured
	}

	suggestion, err := s.suggest(ctx, req.GroupName, req.Key, false)
	if err != nil {
		return nil, fmt.Errorf("failed to translate key %q: %w", req.Key.Name, err)
	}
	return suggestion, nil
}

// FillSecondary suggests secondary texts for every key of a description.
// Translation failures never abort the batch: the key keeps its text and is
// reported as failed.
func (s *TranslationServiceImpl) FillSecondary(ctx context.Context, req primary.FillSecondaryRequest) (*primary.FillSecondaryResponse, error) {
	if s.translator == nil {
		return nil, ErrTranslatorNotConfigured
	}

	keys := req.Description.Keys
	suggestions := make([]*primary.Suggestion, len(keys))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			suggestion, err := s.suggest(ctx, req.Description.GroupName, key, req.OnlyMissing)
			if err != nil {
				suggestion = &primary.Suggestion{
					KeyName: key.Name,
					Status:  primary.SuggestionFailed,
					Reason:  err.Error(),
				}
			}
			suggestions[i] = suggestion
			return nil
		})
	}
	_ = g.Wait()

	desc := req.Description
	for i, suggestion := range suggestions {
		if suggestion.Status != primary.SuggestionApplied {
			continue
		}
		key := desc.Keys[i]
		key.SecondaryText = suggestion.Text
		desc = desc.WithKey(i, key)
	}

	return &primary.FillSecondaryResponse{
		Description: desc,
		Suggestions: suggestions,
	}, nil
}

// Helper methods

// suggest runs one translation under the per-key single-flight rule.
// Skips are returned as a suggestion, translator errors as an error.
func (s *TranslationServiceImpl) suggest(ctx context.Context, group string, key resource.Key, onlyMissing bool) (*primary.Suggestion, error) {
	id := sqlgen.QualifiedKeyName(group, key.Name)

	s.mu.Lock()
	_, busy := s.inFlight[id]
	guard := translation.CanSuggest(translation.SuggestContext{
		KeyName:       key.Name,
		SourceText:    key.PrimaryText,
		SecondaryText: key.SecondaryText,
		InFlight:      busy,
		OnlyMissing:   onlyMissing,
	})
	if guard.Allowed {
		s.inFlight[id] = struct{}{}
	}
	s.mu.Unlock()

	if !guard.Allowed {
		return &primary.Suggestion{
			KeyName: key.Name,
			Status:  primary.SuggestionSkipped,
			Reason:  guard.Reason,
		}, nil
	}

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, id)
		s.mu.Unlock()
	}()

	text, err := s.translator.Translate(ctx, strings.TrimSpace(key.PrimaryText), "", s.targetLang)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty translation for key %q", key.Name)
	}

	return &primary.Suggestion{
		KeyName: key.Name,
		Text:    text,
		Status:  primary.SuggestionApplied,
	}, nil
}

// Ensure TranslationServiceImpl implements the interface.
var _ primary.TranslationService = (*TranslationServiceImpl)(nil)
