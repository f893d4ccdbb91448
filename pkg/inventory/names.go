package inventory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName returns the sheet title for a product name: inner whitespace
// collapsed and every word title-cased, so "  fresh  milk" becomes "Fresh Milk".
func NormalizeName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	return cases.Title(language.Und).String(name)
}
