package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/resmaker/internal/ports/primary"
)

// TranslationAdapter is a thin adapter that translates CLI operations to TranslationService calls.
type TranslationAdapter struct {
	service primary.TranslationService
	out     io.Writer
}

// NewTranslationAdapter creates a new TranslationAdapter with the given service.
func NewTranslationAdapter(service primary.TranslationService, out io.Writer) *TranslationAdapter {
	return &TranslationAdapter{
		service: service,
		out:     out,
	}
}

// Fill suggests secondary texts and prints one line per key.
// Failed keys are reported as warnings; they never fail the command.
func (a *TranslationAdapter) Fill(ctx context.Context, req primary.FillSecondaryRequest) (*primary.FillSecondaryResponse, error) {
	resp, err := a.service.FillSecondary(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to translate: %w", err)
	}

	applied := 0
	for _, s := range resp.Suggestions {
		switch s.Status {
		case primary.SuggestionApplied:
			applied++
			fmt.Fprintf(a.out, "%s %s → %s\n", okMark, s.KeyName, s.Text)
		case primary.SuggestionSkipped:
			fmt.Fprintf(a.out, "%s %s\n", color.New(color.Faint).Sprint("-"), color.New(color.Faint).Sprintf("%s skipped: %s", s.KeyName, s.Reason))
		default:
			fmt.Fprintf(a.out, "%s %s: no suggestion (%s)\n", warnMark, s.KeyName, s.Reason)
		}
	}
	fmt.Fprintf(a.out, "%d of %d keys translated\n", applied, len(resp.Suggestions))

	return resp, nil
}
