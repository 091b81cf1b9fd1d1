package member

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nameCaser = cases.Title(language.Spanish)

// CanonicalName trims and title-cases a person name so hand-typed and
// bulk-imported records end up in one consistent form ("garcía" -> "García").
func CanonicalName(name string) string {
	trimmed := strings.Join(strings.Fields(name), " ")
	if trimmed == "" {
		return trimmed
	}
	return nameCaser.String(trimmed)
}
