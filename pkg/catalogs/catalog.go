// Package catalogs provides the tool catalog: an immutable, ordered set of
// tools loaded once at startup, plus read-only queries and category
// aggregation over it.
//
// A Catalog is never mutated after construction, so it can be shared freely
// between goroutines without locking. Every method that returns tools hands
// out deep copies; callers cannot corrupt the canonical set.
//
// Example:
//
//	cat, err := catalogs.NewEmbedded()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, tool := range cat.ByCategory("code assistant") {
//	    fmt.Println(tool.Name)
//	}
package catalogs

import (
	"slices"

	"github.com/agentstation/aitools/pkg/errors"
)

// Reader provides read-only access to catalog data.
type Reader interface {
	// List returns every tool in catalog order
	List() []Tool

	// Tool returns a tool by id
	Tool(id ToolID) (Tool, error)

	// Contains reports whether a tool with the id exists
	Contains(id ToolID) bool

	// ByCategory filters by case-insensitive exact category match
	ByCategory(category string) []Tool

	// Categories lists distinct categories in ascending order
	Categories() []string

	// Len returns the number of tools
	Len() int
}

// Compile-time interface check.
var _ Reader = (*Catalog)(nil)

// Catalog is an immutable, ordered collection of tools.
type Catalog struct {
	tools []Tool
	index map[ToolID]int
}

// New creates a catalog from the given tools, preserving their order.
// Every tool needs a positive, unique id, a name, and a category.
func New(tools ...Tool) (*Catalog, error) {
	c := &Catalog{
		tools: make([]Tool, 0, len(tools)),
		index: make(map[ToolID]int, len(tools)),
	}

	for _, t := range tools {
		if err := validate(t); err != nil {
			return nil, err
		}
		if _, exists := c.index[t.ID]; exists {
			return nil, errors.NewValidationError("id", t.ID, "duplicate tool id "+t.ID.String())
		}
		c.index[t.ID] = len(c.tools)
		c.tools = append(c.tools, t.Copy())
	}

	return c, nil
}

// Empty returns a catalog with no tools.
func Empty() *Catalog {
	return &Catalog{index: map[ToolID]int{}}
}

func validate(t Tool) error {
	switch {
	case t.ID <= 0:
		return errors.NewValidationError("id", t.ID, "must be a positive integer")
	case t.Name == "":
		return errors.NewValidationError("name", t.Name, "cannot be empty for tool "+t.ID.String())
	case t.Category == "":
		return errors.NewValidationError("category", t.Category, "cannot be empty for tool "+t.ID.String())
	}
	return nil
}

// List returns a copy of every tool in catalog order.
func (c *Catalog) List() []Tool {
	return copyTools(c.tools)
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// Tool returns the tool with the given id.
func (c *Catalog) Tool(id ToolID) (Tool, error) {
	i, ok := c.index[id]
	if !ok {
		return Tool{}, errors.NewNotFoundError("tool", id.String())
	}
	return c.tools[i].Copy(), nil
}

// Contains reports whether a tool with the given id exists.
func (c *Catalog) Contains(id ToolID) bool {
	_, ok := c.index[id]
	return ok
}

// ByCategory returns the tools whose category matches case-insensitively.
// An empty category returns the whole catalog. No match yields an empty,
// non-nil slice.
func (c *Catalog) ByCategory(category string) []Tool {
	if category == "" {
		return c.List()
	}

	want := NormalizeCategory(category)
	matched := make([]Tool, 0)
	for _, t := range c.tools {
		if NormalizeCategory(t.Category) == want {
			matched = append(matched, t.Copy())
		}
	}
	return matched
}

// Categories returns the distinct categories, sorted ascending. Spellings
// that differ only in case count once, under the first spelling seen.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.tools))
	categories := make([]string, 0)
	for _, t := range c.tools {
		key := NormalizeCategory(t.Category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		categories = append(categories, t.Category)
	}
	slices.Sort(categories)
	return categories
}
