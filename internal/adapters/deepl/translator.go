// Package deepl implements the Translator port against the DeepL REST API.
package deepl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/example/resmaker/internal/ports/secondary"
)

// Endpoints of the DeepL API plans. Keys ending in ":fx" belong to the free plan.
const (
	ProEndpoint  = "https://api.deepl.com"
	FreeEndpoint = "https://api-free.deepl.com"
)

const translatePath = "/v2/translate"

// ErrMissingAuthKey is returned by NewTranslator when no auth key is given.
var ErrMissingAuthKey = errors.New("deepl: auth key is required")

// Config configures the DeepL translator.
//
// Zero values are given defaults:
//   - Endpoint: FreeEndpoint or ProEndpoint, picked from the auth key
//   - Timeout:  10s
type Config struct {
	AuthKey  string
	Endpoint string
	Timeout  time.Duration

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Translator implements secondary.Translator with DeepL.
type Translator struct {
	endpoint   string
	authKey    string
	httpClient *http.Client
}

// NewTranslator creates a DeepL translator.
func NewTranslator(cfg Config) (*Translator, error) {
	if strings.TrimSpace(cfg.AuthKey) == "" {
		return nil, ErrMissingAuthKey
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = EndpointFor(cfg.AuthKey)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Translator{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		authKey:    cfg.AuthKey,
		httpClient: client,
	}, nil
}

// EndpointFor returns the API endpoint matching the plan of authKey.
func EndpointFor(authKey string) string {
	if strings.HasSuffix(authKey, ":fx") {
		return FreeEndpoint
	}
	return ProEndpoint
}

type translateRequest struct {
	Text       []string `json:"text"`
	SourceLang string   `json:"source_lang,omitempty"`
	TargetLang string   `json:"target_lang"`
}

type translateResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Translate translates text into targetLang. An empty sourceLang lets DeepL
// detect the source language.
func (t *Translator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	body, err := json.Marshal(translateRequest{
		Text:       []string{text},
		SourceLang: strings.ToUpper(sourceLang),
		TargetLang: strings.ToUpper(targetLang),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode deepl request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint+translatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build deepl request: %w", err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+t.authKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepl request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read deepl response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if json.Unmarshal(data, &e) == nil && e.Message != "" {
			return "", fmt.Errorf("deepl returned %s: %s", resp.Status, e.Message)
		}
		return "", fmt.Errorf("deepl returned %s", resp.Status)
	}

	var out translateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("failed to decode deepl response: %w", err)
	}
	if len(out.Translations) == 0 {
		return "", errors.New("deepl returned no translations")
	}

	return out.Translations[0].Text, nil
}

// Ensure Translator implements the interface.
var _ secondary.Translator = (*Translator)(nil)
