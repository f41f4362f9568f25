package aitools

import (
	"context"

	"github.com/agentstation/aitools/pkg/catalogs"
)

// Tools returns the catalog, optionally filtered by category.
func (c *client) Tools(ctx context.Context, category string) ([]catalogs.Tool, error) {
	if err := simulate(ctx, "get tools", c.latency.Tools); err != nil {
		return nil, err
	}

	tools := c.catalog.ByCategory(category)
	c.logger.Debug().
		Str("category", category).
		Int("count", len(tools)).
		Msg("Listed tools")
	return tools, nil
}

// Categories returns the distinct categories. It never waits.
func (c *client) Categories() []string {
	return c.catalog.Categories()
}

// CategoryCounts returns per-category counts for the same selection Tools
// would return.
func (c *client) CategoryCounts(ctx context.Context, category string) ([]catalogs.CategoryCount, error) {
	tools, err := c.Tools(ctx, category)
	if err != nil {
		return nil, err
	}
	return catalogs.Aggregate(tools), nil
}
