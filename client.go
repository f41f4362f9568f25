// Package aitools provides the data service behind the AI tools directory:
// a fixed catalog of tools, category filtering, a favorites list for the
// current user, and per-category counts for charts.
//
// The catalog is immutable and shared. Favorites live in memory for the
// lifetime of the client and start empty. Operations block for a configurable
// simulated latency (zero by default) and honour context cancellation, so
// callers that want them to run concurrently start them in goroutines.
//
// Example usage:
//
//	client, err := aitools.New(aitools.WithLatency(aitools.DefaultLatency()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client.OnFavoriteAdded(func(tool catalogs.Tool) {
//	    fmt.Printf("Added %s to favorites\n", tool.Name)
//	})
//
//	tools, err := client.Tools(ctx, "Video Generation")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.AddFavorite(ctx, tools[0].ID); errors.IsAlreadyExists(err) {
//	    fmt.Println("already a favorite")
//	}
package aitools

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/aitools/pkg/catalogs"
	"github.com/agentstation/aitools/pkg/errors"
	"github.com/agentstation/aitools/pkg/favorites"
	"github.com/agentstation/aitools/pkg/logging"
)

// Querier reads from the catalog.
type Querier interface {
	// Tools returns every tool when category is empty, otherwise the tools
	// whose category matches case-insensitively
	Tools(ctx context.Context, category string) ([]catalogs.Tool, error)

	// Categories returns the distinct categories sorted ascending
	Categories() []string

	// CategoryCounts aggregates Tools(ctx, category) per category
	CategoryCounts(ctx context.Context, category string) ([]catalogs.CategoryCount, error)
}

// FavoritesManager reads and changes the current user's favorites.
type FavoritesManager interface {
	// Favorites returns the favorite tools in catalog order
	Favorites(ctx context.Context) ([]catalogs.Tool, error)

	// AddFavorite marks a tool as favorite
	AddFavorite(ctx context.Context, id catalogs.ToolID) error

	// RemoveFavorite unmarks a tool; removing a non-favorite is a no-op
	RemoveFavorite(ctx context.Context, id catalogs.ToolID) error
}

// Client is the directory service used by presentation code.
type Client interface {
	Querier
	FavoritesManager
	Hooks

	// Catalog returns the shared, immutable catalog
	Catalog() *catalogs.Catalog
}

// Compile-time interface check.
var _ Client = (*client)(nil)

// client is the internal implementation of the Client interface.
type client struct {
	catalog   *catalogs.Catalog
	favorites *favorites.Registry
	latency   Latency
	logger    *zerolog.Logger
	*hooks
}

// New creates a client. Without options it serves the embedded catalog with
// no simulated latency and an empty favorites list.
func New(opts ...Option) (Client, error) {
	o := defaults().apply(opts...)

	c := &client{
		catalog:   o.catalog,
		favorites: o.favorites,
		latency:   o.latency,
		logger:    o.logger,
		hooks:     newHooks(),
	}

	if c.logger == nil {
		c.logger = logging.Default()
	}

	if c.catalog == nil {
		var err error
		if o.catalogFile != "" {
			c.catalog, err = catalogs.NewFromFile(o.catalogFile)
		} else {
			c.catalog, err = catalogs.NewEmbedded()
		}
		if err != nil {
			return nil, errors.WrapResource("load", "catalog", o.catalogFile, err)
		}
	}

	if c.favorites == nil {
		c.favorites = favorites.New(c.catalog)
	}

	c.logger.Debug().
		Int("tools", c.catalog.Len()).
		Int("categories", len(c.catalog.Categories())).
		Dur("tools_latency", c.latency.Tools).
		Msg("Directory client ready")

	return c, nil
}

// Catalog returns the shared, immutable catalog.
func (c *client) Catalog() *catalogs.Catalog {
	return c.catalog
}
