// Package sqlscript provides the templates for migration script generation.
package sqlscript

import (
	"embed"
	"text/template"
)

//go:embed *.sql.tmpl
var scriptTemplates embed.FS

// Template names, one per script of a pair.
const (
	UpTemplate   = "up.sql.tmpl"
	DownTemplate = "down.sql.tmpl"
)

// Parse parses all script templates. literal renders a Go string as a quoted
// SQL literal and nliteral as a Unicode literal for NVARCHAR values; they are
// exposed to the templates under those names.
func Parse(literal, nliteral func(string) string) (*template.Template, error) {
	return template.New("sqlscript").
		Funcs(TemplateFuncs(literal, nliteral)).
		ParseFS(scriptTemplates, "*.sql.tmpl")
}

// TemplateFuncs returns the function map for script templates.
func TemplateFuncs(literal, nliteral func(string) string) template.FuncMap {
	return template.FuncMap{
		"literal":  literal,
		"nliteral": nliteral,
	}
}
