package sqlgen

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// QuoteLiteral renders s as a T-SQL string literal. Embedded single quotes are
// doubled and the text is normalised to NFC so that composed and decomposed
// accents produce the same stored value.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(norm.NFC.String(s), "'", "''") + "'"
}

// QuoteNLiteral renders s as a Unicode (N-prefixed) T-SQL string literal,
// escaped like QuoteLiteral. Free text stored in NVARCHAR columns uses it so
// that characters outside the server code page survive.
func QuoteNLiteral(s string) string {
	return "N" + QuoteLiteral(s)
}

// rawLiteral wraps s in quotes without escaping. Output matches scripts
// produced by the legacy generator; a single quote in s breaks the script.
func rawLiteral(s string) string {
	return "'" + s + "'"
}

// QuoteIdent renders name as a bracket-quoted T-SQL identifier.
func QuoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}
