// Package bundle contains the pure naming rules for packaged script pairs.
package bundle

import (
	"strings"
	"time"

	"github.com/example/resmaker/internal/core/sqlgen"
)

// RollbackMarker prefixes the base name of the down script.
const RollbackMarker = "ROLLBACK_"

// FileNames are the names of the files of one bundle.
type FileNames struct {
	Up      string // V20250108.1626__combo_orders.sql
	Down    string // V20250108.1626__ROLLBACK_combo_orders.sql
	Archive string // 20250108.1626__combo_orders.zip
}

// Bundle is a script pair ready to be written.
type Bundle struct {
	Token   string // version token without the leading "V"
	Names   FileNames
	Scripts sqlgen.ScriptPair
}

// TokenLayout is the time layout of a version token.
const TokenLayout = "20060102.1504"

// VersionToken formats t as <year><month><day>.<hour><minute>, e.g. "20250108.1626".
func VersionToken(t time.Time) string {
	return t.Format(TokenLayout)
}

// BaseFileName replaces spaces with underscores, e.g. "resource combo" -> "resource_combo".
func BaseFileName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, " ", "_"))
}

// Names derives the file names for a bundle created at t.
func Names(t time.Time, fileName string) FileNames {
	token := VersionToken(t)
	base := BaseFileName(fileName)
	return FileNames{
		Up:      "V" + token + "__" + base + ".sql",
		Down:    "V" + token + "__" + RollbackMarker + base + ".sql",
		Archive: token + "__" + base + ".zip",
	}
}

// New assembles the bundle for scripts generated at t.
func New(t time.Time, fileName string, scripts sqlgen.ScriptPair) Bundle {
	return Bundle{
		Token:   VersionToken(t),
		Names:   Names(t, fileName),
		Scripts: scripts,
	}
}
