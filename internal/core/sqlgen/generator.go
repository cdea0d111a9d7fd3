// Package sqlgen turns a validated resource description into a pair of T-SQL
// migration scripts.
//
// The up script inserts the group if missing and, per key, inserts the
// resource with its localized texts or updates the texts when the resource
// already exists. The down script deletes the resources again but never the
// group, which may be shared by other generations.
//
// Generation is a pure function of its input: no clock, no randomness, no I/O.
// A Generator is safe for concurrent use.
package sqlgen

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"

	"github.com/example/resmaker/internal/core/resource"
	"github.com/example/resmaker/internal/templates/sqlscript"
)

// ScriptPair is the forward migration and its rollback.
type ScriptPair struct {
	Up   string
	Down string
}

// Generator renders script pairs with a fixed set of options.
type Generator struct {
	opts Options
	tmpl *template.Template
}

// NewGenerator creates a Generator. Zero-valued options use the defaults.
func NewGenerator(opts Options) *Generator {
	opts = opts.withDefaults()

	literal, nliteral := QuoteLiteral, QuoteNLiteral
	if opts.RawLiterals {
		literal, nliteral = rawLiteral, rawLiteral
	}

	tmpl, err := sqlscript.Parse(literal, nliteral)
	if err != nil {
		// Templates are embedded; a parse failure is a build defect.
		panic(fmt.Sprintf("sqlgen: failed to parse script templates: %v", err))
	}

	return &Generator{opts: opts, tmpl: tmpl}
}

// Options returns the effective options, defaults applied.
func (g *Generator) Options() Options {
	return g.opts
}

// Plan builds the statement tree for d.
func (g *Generator) Plan(d resource.Description) Plan {
	return BuildPlan(d, g.opts)
}

// Generate renders the up and down scripts for d.
// d must satisfy resource.ValidateContent; it is not re-checked here.
func (g *Generator) Generate(d resource.Description) ScriptPair {
	plan := g.Plan(d)
	return ScriptPair{
		Up:   g.render(sqlscript.UpTemplate, plan),
		Down: g.render(sqlscript.DownTemplate, plan),
	}
}

func (g *Generator) render(name string, plan Plan) string {
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, name, plan); err != nil {
		panic(fmt.Sprintf("sqlgen: failed to render %s: %v", name, err))
	}
	return buf.String()
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	return NewGenerator(Options{})
})

// Generate renders d with the default options.
func Generate(d resource.Description) ScriptPair {
	return defaultGenerator().Generate(d)
}
