package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/resmaker/internal/core/sqlgen"
)

// DirName is the project directory holding config.json.
const DirName = ".resmaker"

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// EnvDeepLAuthKey names the environment variable holding the DeepL auth key.
// The key is never read from or written to config.json.
const EnvDeepLAuthKey = "DEEPL_API_KEY"

// DefaultTargetLang is the DeepL target language of secondary texts.
const DefaultTargetLang = "ES"

// Config represents the project configuration
type Config struct {
	Version     string  `json:"version"`
	Database    string  `json:"database,omitempty"`     // e.g. "ACS"
	Schema      string  `json:"schema,omitempty"`       // e.g. "IIS"
	GroupOrigin string  `json:"group_origin,omitempty"` // Origin of new resource groups
	GroupSystem string  `json:"group_system,omitempty"` // System of new resource groups
	Locales     Locales `json:"locales"`
	RawLiterals bool    `json:"raw_literals,omitempty"` // emit literals without quote escaping
	DeepL       DeepL   `json:"deepl"`
	HistoryPath string  `json:"history_path,omitempty"` // empty means ~/.resmaker/history.db
}

// Locales configures the two languages every key is translated into.
type Locales struct {
	Primary   Locale `json:"primary"`
	Secondary Locale `json:"secondary"`
}

// Locale binds a culture code to its script variable suffix.
type Locale struct {
	Suffix      string `json:"suffix"`
	CultureCode string `json:"culture_code"`
}

// DeepL configures translation assist.
type DeepL struct {
	Endpoint   string `json:"endpoint,omitempty"` // empty picks the plan from the auth key
	TargetLang string `json:"target_lang,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	schema := sqlgen.DefaultSchema()
	locales := sqlgen.DefaultLocales()
	return &Config{
		Version:     CurrentVersion,
		Database:    schema.Database,
		Schema:      schema.Name,
		GroupOrigin: schema.GroupOrigin,
		GroupSystem: schema.GroupSystem,
		Locales: Locales{
			Primary:   Locale{Suffix: locales.Primary.Suffix, CultureCode: locales.Primary.CultureCode},
			Secondary: Locale{Suffix: locales.Secondary.Suffix, CultureCode: locales.Secondary.CultureCode},
		},
		DeepL: DeepL{TargetLang: DefaultTargetLang},
	}
}

// Path returns the location of config.json below dir.
func Path(dir string) string {
	return filepath.Join(dir, DirName, "config.json")
}

// LoadConfig reads .resmaker/config.json from the specified directory.
// Returns an error if no config is found; fields left empty take defaults.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault reads the config from dir, falling back to Default when the
// file does not exist. Parse errors are still returned.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", DirName, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks that the two locales are usable in generated scripts.
func (c *Config) Validate() error {
	p, s := c.Locales.Primary, c.Locales.Secondary
	if !sqlgen.IsVariableSuffix(p.Suffix) || !sqlgen.IsVariableSuffix(s.Suffix) {
		return fmt.Errorf("invalid config: locale suffixes must be letters or digits (got %q, %q)", p.Suffix, s.Suffix)
	}
	if p.Suffix == s.Suffix {
		return fmt.Errorf("invalid config: primary and secondary locales share suffix %q", p.Suffix)
	}
	if p.CultureCode == "" || s.CultureCode == "" {
		return errors.New("invalid config: locale culture codes are required")
	}
	return nil
}

// GeneratorOptions maps the config onto script generator options.
func (c *Config) GeneratorOptions() sqlgen.Options {
	return sqlgen.Options{
		Locales: sqlgen.LocaleSet{
			Primary:   sqlgen.Locale{Suffix: c.Locales.Primary.Suffix, CultureCode: c.Locales.Primary.CultureCode},
			Secondary: sqlgen.Locale{Suffix: c.Locales.Secondary.Suffix, CultureCode: c.Locales.Secondary.CultureCode},
		},
		Schema: sqlgen.Schema{
			Database:    c.Database,
			Name:        c.Schema,
			GroupOrigin: c.GroupOrigin,
			GroupSystem: c.GroupSystem,
		},
		RawLiterals: c.RawLiterals,
	}
}

// DeepLAuthKey returns the DeepL auth key from the environment.
func DeepLAuthKey() string {
	return os.Getenv(EnvDeepLAuthKey)
}

// fillDefaults restores defaults for fields an older or partial file left empty.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Version == "" {
		c.Version = d.Version
	}
	if c.Database == "" {
		c.Database = d.Database
	}
	if c.Schema == "" {
		c.Schema = d.Schema
	}
	if c.GroupOrigin == "" {
		c.GroupOrigin = d.GroupOrigin
	}
	if c.GroupSystem == "" {
		c.GroupSystem = d.GroupSystem
	}
	if c.Locales.Primary == (Locale{}) {
		c.Locales.Primary = d.Locales.Primary
	}
	if c.Locales.Secondary == (Locale{}) {
		c.Locales.Secondary = d.Locales.Secondary
	}
	if c.DeepL.TargetLang == "" {
		c.DeepL.TargetLang = d.DeepL.TargetLang
	}
}
