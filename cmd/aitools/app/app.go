// Package app provides the application context and dependency management
// for the aitools CLI: configuration, logging and the directory client that
// every command shares.
package app

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/aitools"
	"github.com/agentstation/aitools/internal/appcontext"
	"github.com/agentstation/aitools/pkg/catalogs"
	"github.com/agentstation/aitools/pkg/errors"
)

// App represents the aitools application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Standard streams, replaceable in tests
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Directory client (lazy-initialized, singleton)
	mu     sync.Mutex
	client aitools.Client
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig("")
		if err != nil {
			return nil, errors.WrapResource("load", "config", "", err)
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config, app.stderr)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Output
}

// Client returns the directory client, creating it lazily if needed.
func (a *App) Client() (aitools.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	client, err := aitools.New(a.clientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	client.OnFavoriteAdded(func(tool catalogs.Tool) {
		a.logger.Debug().Int("tool_id", int(tool.ID)).Str("name", tool.Name).Msg("Favorite added")
	})
	client.OnFavoriteRemoved(func(id catalogs.ToolID) {
		a.logger.Debug().Int("tool_id", int(id)).Msg("Favorite removed")
	})

	a.client = client
	return client, nil
}

// clientOptions constructs client options from the app configuration.
func (a *App) clientOptions() []aitools.Option {
	opts := []aitools.Option{aitools.WithLogger(a.logger)}

	if a.config.CatalogFile != "" {
		opts = append(opts, aitools.WithCatalogFile(a.config.CatalogFile))
	}

	if a.config.SimulateLatency {
		opts = append(opts, aitools.WithLatency(aitools.DefaultLatency()))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client (useful for testing).
func WithClient(client aitools.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}

// WithIO replaces the standard streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *App) error {
		a.stdin = stdin
		a.stdout = stdout
		a.stderr = stderr
		return nil
	}
}
