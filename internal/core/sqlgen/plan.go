package sqlgen

import "github.com/example/resmaker/internal/core/resource"

// Plan is the statement tree both scripts are rendered from.
type Plan struct {
	Locales []Locale
	Tables  Tables
	Group   GroupUpsert
	Keys    []KeyBlock
}

// Tables holds the rendered three-part table identifiers.
type Tables struct {
	Language          string
	ResourceGroup     string
	Resource          string
	LocalizedResource string
}

// GroupUpsert is the group insert-if-missing statement of the up script.
type GroupUpsert struct {
	Name        string // normalised, e.g. "ComboOrders"
	Description string
	Origin      string
	System      string
}

// KeyBlock is the self-contained conditional block emitted for one key.
type KeyBlock struct {
	Suffix        string // ".ChooseCombo", appended to the group name variable
	QualifiedName string // "ComboOrders.ChooseCombo"
	Description   string
	Texts         []LocalizedText
}

// LocalizedText is the value of a key in one locale.
type LocalizedText struct {
	Locale Locale
	Value  string
}

// BuildPlan derives the statement tree for d. It never modifies d.
func BuildPlan(d resource.Description, opts Options) Plan {
	opts = opts.withDefaults()
	group := NormalizeName(d.GroupName)

	plan := Plan{
		Locales: opts.Locales.List(),
		Tables: Tables{
			Language:          opts.Schema.Table(TableLanguage),
			ResourceGroup:     opts.Schema.Table(TableResourceGroup),
			Resource:          opts.Schema.Table(TableResource),
			LocalizedResource: opts.Schema.Table(TableLocalizedResource),
		},
		Group: GroupUpsert{
			Name:        group,
			Description: NormalizeDescription(d.GroupDescription),
			Origin:      opts.Schema.GroupOrigin,
			System:      opts.Schema.GroupSystem,
		},
		Keys: make([]KeyBlock, 0, len(d.Keys)),
	}

	for _, k := range d.Keys {
		key := NormalizeName(k.Name)
		plan.Keys = append(plan.Keys, KeyBlock{
			Suffix:        "." + key,
			QualifiedName: group + "." + key,
			Description:   NormalizeDescription(k.Description),
			Texts: []LocalizedText{
				{Locale: opts.Locales.Primary, Value: k.PrimaryText},
				{Locale: opts.Locales.Secondary, Value: k.SecondaryText},
			},
		})
	}

	return plan
}

// QualifiedNames returns the qualified key names in block order.
func (p Plan) QualifiedNames() []string {
	names := make([]string, len(p.Keys))
	for i, k := range p.Keys {
		names[i] = k.QualifiedName
	}
	return names
}
