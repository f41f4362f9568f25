package catalogs

import "testing"

// NewTestCatalog builds a catalog from tools or fails the test.
func NewTestCatalog(t testing.TB, tools ...Tool) *Catalog {
	t.Helper()
	c, err := New(tools...)
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return c
}
