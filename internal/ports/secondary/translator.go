package secondary

import "context"

// Translator defines the secondary port for an external text-translation service.
type Translator interface {
	// Translate translates text into targetLang. An empty sourceLang lets the
	// service detect the source language.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
