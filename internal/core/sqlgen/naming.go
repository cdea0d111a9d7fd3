package sqlgen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize uppercases the first character of the first word and leaves the
// rest of the text unchanged. Leading whitespace is preserved.
func Capitalize(text string) string {
	i := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) })
	if i < 0 {
		return text
	}
	r, size := utf8.DecodeRuneInString(text[i:])
	upper := unicode.ToUpper(r)
	if upper == r {
		return text
	}
	return text[:i] + string(upper) + text[i+size:]
}

// StripSpaces removes every space from an identifier-like string.
func StripSpaces(text string) string {
	return strings.ReplaceAll(text, " ", "")
}

// NormalizeName returns the stored form of a group or key name.
func NormalizeName(name string) string {
	return Capitalize(StripSpaces(name))
}

// NormalizeDescription returns the stored form of a free-text description.
func NormalizeDescription(text string) string {
	return strings.TrimSpace(Capitalize(text))
}

// QualifiedKeyName composes the canonical lookup key of a resource,
// e.g. ("orderCombo", "chooseItem") -> "OrderCombo.ChooseItem".
func QualifiedKeyName(groupName, keyName string) string {
	return NormalizeName(groupName) + "." + NormalizeName(keyName)
}
