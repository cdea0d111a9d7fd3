package sqlgen

// Table names of the localization schema.
const (
	TableLanguage          = "Language"
	TableResourceGroup     = "ResourceGroup"
	TableResource          = "Resource"
	TableLocalizedResource = "LocalizedResource"
)

// Locale binds a culture code to the suffix of its script variables.
// Suffix "BR" yields @LanguageIdBR and @TextValueBR.
type Locale struct {
	Suffix      string
	CultureCode string
}

// LocaleSet is the pair of locales every resource key is translated into.
type LocaleSet struct {
	Primary   Locale
	Secondary Locale
}

// DefaultLocales returns pt-br as primary and es-ar as secondary locale.
func DefaultLocales() LocaleSet {
	return LocaleSet{
		Primary:   Locale{Suffix: "BR", CultureCode: "pt-br"},
		Secondary: Locale{Suffix: "ARG", CultureCode: "es-ar"},
	}
}

// IsVariableSuffix reports whether s can be appended to a T-SQL variable name.
func IsVariableSuffix(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// List returns the locales in script order.
func (s LocaleSet) List() []Locale {
	return []Locale{s.Primary, s.Secondary}
}

// Schema locates the localization tables and the fixed values written to
// new resource groups.
type Schema struct {
	Database    string // e.g. "ACS"
	Name        string // e.g. "IIS"
	GroupOrigin string
	GroupSystem string
}

// DefaultSchema returns the ACS.IIS schema.
func DefaultSchema() Schema {
	return Schema{
		Database:    "ACS",
		Name:        "IIS",
		GroupOrigin: "Angular",
		GroupSystem: "CSOnline",
	}
}

// Table returns the three-part identifier of a table, e.g. [ACS].[IIS].[Resource].
func (s Schema) Table(name string) string {
	return QuoteIdent(s.Database) + "." + QuoteIdent(s.Name) + "." + QuoteIdent(name)
}

// Options configures a Generator. Zero fields fall back to defaults.
type Options struct {
	Locales LocaleSet
	Schema  Schema

	// RawLiterals disables quote escaping, NFC normalisation and the N prefix
	// of free-text literals, reproducing the output of the legacy generator
	// byte for byte.
	RawLiterals bool
}

func (o Options) withDefaults() Options {
	def := DefaultLocales()
	if o.Locales.Primary == (Locale{}) {
		o.Locales.Primary = def.Primary
	}
	if o.Locales.Secondary == (Locale{}) {
		o.Locales.Secondary = def.Secondary
	}

	schema := DefaultSchema()
	if o.Schema.Database == "" {
		o.Schema.Database = schema.Database
	}
	if o.Schema.Name == "" {
		o.Schema.Name = schema.Name
	}
	if o.Schema.GroupOrigin == "" {
		o.Schema.GroupOrigin = schema.GroupOrigin
	}
	if o.Schema.GroupSystem == "" {
		o.Schema.GroupSystem = schema.GroupSystem
	}
	return o
}
