package aitools

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/aitools/pkg/catalogs"
	"github.com/agentstation/aitools/pkg/constants"
	"github.com/agentstation/aitools/pkg/favorites"
)

// Latency is the artificial delay applied to each client operation to mimic
// a remote API. The zero value disables all delays.
type Latency struct {
	Tools          time.Duration `json:"tools" yaml:"tools"`
	Favorites      time.Duration `json:"favorites" yaml:"favorites"`
	AddFavorite    time.Duration `json:"add_favorite" yaml:"add_favorite"`
	RemoveFavorite time.Duration `json:"remove_favorite" yaml:"remove_favorite"`
}

// DefaultLatency returns the latency profile of the hosted directory service.
func DefaultLatency() Latency {
	return Latency{
		Tools:          constants.ToolsLatency,
		Favorites:      constants.FavoritesLatency,
		AddFavorite:    constants.AddFavoriteLatency,
		RemoveFavorite: constants.RemoveFavoriteLatency,
	}
}

// options holds the configuration for a client.
type options struct {
	catalog     *catalogs.Catalog
	catalogFile string
	favorites   *favorites.Registry
	latency     Latency
	logger      *zerolog.Logger
}

// Option configures a client.
type Option func(*options)

func defaults() *options {
	return &options{}
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithCatalog uses an already loaded catalog instead of the embedded seed.
func WithCatalog(catalog *catalogs.Catalog) Option {
	return func(o *options) {
		o.catalog = catalog
	}
}

// WithCatalogFile loads the catalog from a YAML file instead of the embedded
// seed. WithCatalog takes precedence when both are given.
func WithCatalogFile(path string) Option {
	return func(o *options) {
		o.catalogFile = path
	}
}

// WithFavorites shares an existing registry. It must be backed by the same
// catalog the client uses.
func WithFavorites(registry *favorites.Registry) Option {
	return func(o *options) {
		o.favorites = registry
	}
}

// WithLatency sets the simulated per-operation latency.
func WithLatency(latency Latency) Option {
	return func(o *options) {
		o.latency = latency
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
