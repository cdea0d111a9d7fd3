package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	cliadapter "github.com/example/resmaker/internal/adapters/cli"
)

const generationPrefix = "GEN-"

var shortIDPattern = regexp.MustCompile(`^\d+$`)

// normalizeGenerationID accepts GEN-007 as is and expands a bare number such
// as 7 to GEN-007. Anything else is rejected with a hint.
func normalizeGenerationID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if strings.HasPrefix(strings.ToUpper(id), generationPrefix) {
		return generationPrefix + id[len(generationPrefix):], nil
	}

	if shortIDPattern.MatchString(id) {
		n, err := strconv.Atoi(id)
		if err == nil && n > 0 {
			return fmt.Sprintf("%s%03d", generationPrefix, n), nil
		}
	}

	return "", fmt.Errorf("invalid generation ID '%s'. Use the full ID format, e.g. %s001", id, generationPrefix)
}

// selectionFromFlags maps --up/--down onto a script selection.
func selectionFromFlags(up, down bool) cliadapter.ScriptSelection {
	switch {
	case up && !down:
		return cliadapter.UpScript
	case down && !up:
		return cliadapter.DownScript
	default:
		return cliadapter.BothScripts
	}
}
