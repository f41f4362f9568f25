package catalogs

import (
	"golang.org/x/text/cases"
)

// NormalizeCategory returns the case-folded projection of a category used
// for comparisons. Stored categories are never rewritten.
func NormalizeCategory(category string) string {
	// Casers carry state, so one is built per call.
	return cases.Fold().String(category)
}

// EqualFoldCategory reports whether two categories match case-insensitively.
func EqualFoldCategory(a, b string) bool {
	return NormalizeCategory(a) == NormalizeCategory(b)
}
