package primary

import (
	"context"

	"github.com/example/resmaker/internal/core/resource"
)

// TranslationService defines the primary port for translation assist.
type TranslationService interface {
	// Suggest translates the primary text of one key into the secondary locale.
	Suggest(ctx context.Context, req SuggestRequest) (*Suggestion, error)

	// FillSecondary suggests secondary texts for every key of a description.
	// Failed or skipped keys keep their current secondary text.
	FillSecondary(ctx context.Context, req FillSecondaryRequest) (*FillSecondaryResponse, error)
}

// SuggestRequest identifies the key to translate.
type SuggestRequest struct {
	GroupName string
	Key       resource.Key
}

// Suggestion outcomes.
const (
	SuggestionApplied = "applied"
	SuggestionSkipped = "skipped"
	SuggestionFailed  = "failed"
)

// Suggestion is the result of translating one key.
type Suggestion struct {
	KeyName string
	Text    string // empty unless Status is SuggestionApplied
	Status  string
	Reason  string
}

// FillSecondaryRequest contains parameters for translating a whole description.
type FillSecondaryRequest struct {
	Description resource.Description
	OnlyMissing bool
}

// FillSecondaryResponse contains the updated description and per-key outcomes
// in key order.
type FillSecondaryResponse struct {
	Description resource.Description
	Suggestions []*Suggestion
}
