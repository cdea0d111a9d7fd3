package deepl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEndpointFor(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"0c2f-abc:fx", FreeEndpoint},
		{"0c2f-abc", ProEndpoint},
	}
	for _, tt := range tests {
		if got := EndpointFor(tt.key); got != tt.want {
			t.Errorf("EndpointFor(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestNewTranslator_RequiresKey(t *testing.T) {
	if _, err := NewTranslator(Config{}); !errors.Is(err, ErrMissingAuthKey) {
		t.Errorf("expected ErrMissingAuthKey, got %v", err)
	}
}

func TestTranslate_Success(t *testing.T) {
	var got translateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2/translate" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "DeepL-Auth-Key secret:fx" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"translations":[{"detected_source_language":"PT","text":"Elija el combo"}]}`))
	}))
	defer srv.Close()

	tr, err := NewTranslator(Config{AuthKey: "secret:fx", Endpoint: srv.URL + "/"})
	if err != nil {
		t.Fatalf("NewTranslator failed: %v", err)
	}

	text, err := tr.Translate(context.Background(), "Escolha o combo", "", "es")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if text != "Elija el combo" {
		t.Errorf("Translate() = %q", text)
	}
	if len(got.Text) != 1 || got.Text[0] != "Escolha o combo" {
		t.Errorf("request text = %v", got.Text)
	}
	if got.TargetLang != "ES" || got.SourceLang != "" {
		t.Errorf("request langs = %q -> %q", got.SourceLang, got.TargetLang)
	}
}

func TestTranslate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "quota", status: 456, body: `{"message":"Quota exceeded"}`, wantErr: "Quota exceeded"},
		{name: "forbidden without body", status: http.StatusForbidden, body: ``, wantErr: "403"},
		{name: "empty translations", status: http.StatusOK, body: `{"translations":[]}`, wantErr: "no translations"},
		{name: "malformed body", status: http.StatusOK, body: `{`, wantErr: "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			tr, err := NewTranslator(Config{AuthKey: "k", Endpoint: srv.URL})
			if err != nil {
				t.Fatal(err)
			}
			_, err = tr.Translate(context.Background(), "Olá", "", "ES")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Translate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestTranslate_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer srv.Close()

	tr, err := NewTranslator(Config{AuthKey: "k", Endpoint: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := tr.Translate(ctx, "Olá", "", "ES"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
