// Package translation contains the pure rules for translation assist.
// Guards are pure functions that evaluate preconditions without side effects.
package translation

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// SuggestContext provides context for the translate guard.
type SuggestContext struct {
	KeyName       string
	SourceText    string
	SecondaryText string
	InFlight      bool // a request for this key is still running
	OnlyMissing   bool // skip keys that already have a secondary text
}

// CanSuggest evaluates whether a translation may be requested for a key.
// Rules:
// - Source text must not be empty
// - At most one request per key may be in flight
// - With OnlyMissing, keys that already have a secondary text are left alone
func CanSuggest(ctx SuggestContext) GuardResult {
	if strings.TrimSpace(ctx.SourceText) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("key %q has no primary text to translate", ctx.KeyName),
		}
	}

	if ctx.InFlight {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("translation for key %q is already in progress", ctx.KeyName),
		}
	}

	if ctx.OnlyMissing && strings.TrimSpace(ctx.SecondaryText) != "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("key %q already has a secondary text", ctx.KeyName),
		}
	}

	return GuardResult{Allowed: true}
}
