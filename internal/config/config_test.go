package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/resmaker/internal/core/sqlgen"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, DirName), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(dir), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}

	opts := cfg.GeneratorOptions()
	if opts.Schema != sqlgen.DefaultSchema() {
		t.Errorf("schema = %+v, want defaults", opts.Schema)
	}
	if opts.Locales != sqlgen.DefaultLocales() {
		t.Errorf("locales = %+v, want defaults", opts.Locales)
	}
	if cfg.DeepL.TargetLang != "ES" {
		t.Errorf("target lang = %q, want ES", cfg.DeepL.TargetLang)
	}
}

func TestLoadConfig_MissingFileIsError(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Database = "ACS_QA"
	cfg.RawLiterals = true
	cfg.HistoryPath = "/tmp/history.db"

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Database != "ACS_QA" || !loaded.RawLiterals || loaded.HistoryPath != "/tmp/history.db" {
		t.Errorf("unexpected config: %+v", loaded)
	}
	if !loaded.GeneratorOptions().RawLiterals {
		t.Error("expected RawLiterals in generator options")
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"version":"1","locales":{"secondary":{"suffix":"US","culture_code":"en-us"}}}`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Database != "ACS" || cfg.Schema != "IIS" {
		t.Errorf("expected default schema, got %s.%s", cfg.Database, cfg.Schema)
	}
	if cfg.Locales.Primary.CultureCode != "pt-br" {
		t.Errorf("primary = %+v, want default", cfg.Locales.Primary)
	}
	if cfg.Locales.Secondary.CultureCode != "en-us" {
		t.Errorf("secondary = %+v", cfg.Locales.Secondary)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed json", `{`, "failed to parse config"},
		{"bad suffix", `{"locales":{"primary":{"suffix":"pt-br","culture_code":"pt-br"}}}`, "locale suffixes"},
		{"shared suffix", `{"locales":{"primary":{"suffix":"BR","culture_code":"pt-br"},"secondary":{"suffix":"BR","culture_code":"es-ar"}}}`, "share suffix"},
		{"empty culture", `{"locales":{"secondary":{"suffix":"US","culture_code":""}}}`, "culture codes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			_, err := LoadOrDefault(dir)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDeepLAuthKey(t *testing.T) {
	t.Setenv(EnvDeepLAuthKey, "abc:fx")
	if got := DeepLAuthKey(); got != "abc:fx" {
		t.Errorf("DeepLAuthKey() = %q", got)
	}
}
