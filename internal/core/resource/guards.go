package resource

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxFieldLength is the maximum number of characters accepted for any field.
const MaxFieldLength = 100

// MaxQualifiedKeyLength bounds "Group.Key" to the @ResourceKey VARCHAR(100)
// variable of the generated scripts.
const MaxQualifiedKeyLength = 100

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// FieldError describes a constraint violation on a single field.
// Field is a path such as "name" or "keys[1].primaryText".
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is the set of field errors found in a Description.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return "invalid resource description: " + e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("invalid resource description (%d errors): %s", len(e), strings.Join(msgs, "; "))
}

// ForField returns the errors reported for the given field path.
func (e ValidationErrors) ForField(field string) []FieldError {
	var out []FieldError
	for _, fe := range e {
		if fe.Field == field {
			out = append(out, fe)
		}
	}
	return out
}

// Validate checks every constraint a Description must satisfy before it can
// be packaged, including the bundle file name.
// Returns nil or a ValidationErrors value.
func Validate(d Description) error {
	var errs ValidationErrors
	switch {
	case strings.TrimSpace(d.FileName) == "":
		errs = append(errs, FieldError{Field: "fileName", Message: "file name is required"})
	case strings.ContainsAny(d.FileName, `/\`):
		errs = append(errs, FieldError{Field: "fileName", Message: "file name must not contain path separators"})
	}
	errs = append(errs, contentErrors(d)...)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateContent checks the group and its keys, ignoring the bundle file name.
// Preview uses this since nothing is written.
func ValidateContent(d Description) error {
	errs := contentErrors(d)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// contentErrors evaluates the group and key rules.
// Rules:
// - Group and key names are required, at most 100 characters, [A-Za-z0-9_] only
// - Descriptions and translations are required and at most 100 characters
// - At least one key
// - Key names are unique within the group, ignoring case
// - "Group.Key" fits in MaxQualifiedKeyLength
func contentErrors(d Description) ValidationErrors {
	var errs ValidationErrors

	groupOK := isIdentifier(d.GroupName)
	errs = checkIdentifier(errs, "name", d.GroupName, "group name is required")
	errs = checkText(errs, "description", d.GroupDescription, "group description is required")

	if len(d.Keys) == 0 {
		errs = append(errs, FieldError{Field: "keys", Message: "at least one resource key is required"})
		return errs
	}

	// SQL Server's default collation compares keys case-insensitively.
	seen := make(map[string]int, len(d.Keys))
	for i, k := range d.Keys {
		prefix := fmt.Sprintf("keys[%d].", i)
		errs = checkIdentifier(errs, prefix+"name", k.Name, "key name is required")
		errs = checkText(errs, prefix+"description", k.Description, "key description is required")
		errs = checkText(errs, prefix+"primaryText", k.PrimaryText, "primary translation is required")
		errs = checkText(errs, prefix+"secondaryText", k.SecondaryText, "secondary translation is required")

		if k.Name == "" {
			continue
		}
		if groupOK && isIdentifier(k.Name) {
			if n := len(d.GroupName) + 1 + len(k.Name); n > MaxQualifiedKeyLength {
				errs = append(errs, FieldError{
					Field:   prefix + "name",
					Message: fmt.Sprintf("qualified key name must be at most %d characters (got %d)", MaxQualifiedKeyLength, n),
				})
			}
		}
		folded := strings.ToLower(k.Name)
		if j, dup := seen[folded]; dup {
			errs = append(errs, FieldError{
				Field:   prefix + "name",
				Message: fmt.Sprintf("key name %q is already used by keys[%d]", k.Name, j),
			})
			continue
		}
		seen[folded] = i
	}

	return errs
}

func checkIdentifier(errs ValidationErrors, field, value, requiredMsg string) ValidationErrors {
	if value == "" {
		return append(errs, FieldError{Field: field, Message: requiredMsg})
	}
	if utf8.RuneCountInString(value) > MaxFieldLength {
		errs = append(errs, FieldError{Field: field, Message: tooLongMessage()})
	}
	if !identifierPattern.MatchString(value) {
		errs = append(errs, FieldError{Field: field, Message: "only letters, digits and underscores are allowed (no spaces)"})
	}
	return errs
}

// isIdentifier reports whether value passes checkIdentifier. Such values are
// ASCII without spaces, so their byte length is their stored length.
func isIdentifier(value string) bool {
	return value != "" && len(value) <= MaxFieldLength && identifierPattern.MatchString(value)
}

func checkText(errs ValidationErrors, field, value, requiredMsg string) ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return append(errs, FieldError{Field: field, Message: requiredMsg})
	}
	if utf8.RuneCountInString(value) > MaxFieldLength {
		errs = append(errs, FieldError{Field: field, Message: tooLongMessage()})
	}
	return errs
}

func tooLongMessage() string {
	return fmt.Sprintf("enter at most %d characters", MaxFieldLength)
}
