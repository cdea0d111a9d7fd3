// Package resource contains the pure business logic for resource descriptions.
// Guards are pure functions that evaluate preconditions without side effects.
package resource

// Description is a resource group together with the keys it contains.
type Description struct {
	FileName         string // Bundle base name chosen by the operator
	GroupName        string // e.g. "comboOrders"
	GroupDescription string
	Keys             []Key // Order is preserved in generated scripts
}

// Key is one localizable string unit within a group.
type Key struct {
	Name          string // e.g. "chooseCombo"
	Description   string
	PrimaryText   string // base locale (pt-BR)
	SecondaryText string // secondary locale (es-AR)
}

// KeyNames returns the key names in input order.
func (d Description) KeyNames() []string {
	names := make([]string, len(d.Keys))
	for i, k := range d.Keys {
		names[i] = k.Name
	}
	return names
}

// WithKey returns a copy of d where the key at index i is replaced.
// The receiver's key slice is never written to.
func (d Description) WithKey(i int, key Key) Description {
	keys := make([]Key, len(d.Keys))
	copy(keys, d.Keys)
	keys[i] = key
	d.Keys = keys
	return d
}
