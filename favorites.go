package aitools

import (
	"context"

	"github.com/agentstation/aitools/pkg/catalogs"
)

// Favorites returns the favorite tools in catalog order.
func (c *client) Favorites(ctx context.Context) ([]catalogs.Tool, error) {
	if err := simulate(ctx, "get favorites", c.latency.Favorites); err != nil {
		return nil, err
	}

	tools := c.favorites.List()
	c.logger.Debug().Int("count", len(tools)).Msg("Listed favorites")
	return tools, nil
}

// AddFavorite marks a tool as favorite. Errors match errors.ErrNotFound for
// an unknown tool and errors.ErrAlreadyExists for a repeated add.
func (c *client) AddFavorite(ctx context.Context, id catalogs.ToolID) error {
	if err := simulate(ctx, "add favorite", c.latency.AddFavorite); err != nil {
		return err
	}

	if err := c.favorites.Add(id); err != nil {
		c.logger.Debug().Err(err).Int("tool_id", int(id)).Msg("Favorite not added")
		return err
	}
	c.logger.Debug().Int("tool_id", int(id)).Msg("Favorite added")

	// Add only succeeds for ids present in the immutable catalog.
	if tool, err := c.catalog.Tool(id); err == nil {
		c.triggerFavoriteAdded(tool)
	}
	return nil
}

// RemoveFavorite unmarks a tool. It only fails when ctx ends first.
func (c *client) RemoveFavorite(ctx context.Context, id catalogs.ToolID) error {
	if err := simulate(ctx, "remove favorite", c.latency.RemoveFavorite); err != nil {
		return err
	}

	if c.favorites.Remove(id) {
		c.logger.Debug().Int("tool_id", int(id)).Msg("Favorite removed")
		c.triggerFavoriteRemoved(id)
	}
	return nil
}
