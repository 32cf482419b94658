// Package app provides the application context and dependency management
// for the gamedex CLI. It centralizes configuration, logging, and the
// gamedex instance behind a single struct handed to commands.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/gfdac/gamedex"
)

// App represents the gamedex application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Gamedex instance (lazy-initialized, singleton)
	mu      sync.Mutex
	gamedex gamedex.Gamedex
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

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

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Format returns the configured output format.
func (a *App) Format() string {
	return a.config.Format
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Gamedex returns the gamedex instance, creating it lazily on first use.
// The catalog loads from --catalog when set, otherwise from the bundled
// document. A load failure here is a startup configuration error: callers
// report it and terminate.
func (a *App) Gamedex() (gamedex.Gamedex, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.gamedex != nil {
		return a.gamedex, nil
	}

	var opts []gamedex.Option
	if a.config.CatalogPath != "" {
		opts = append(opts, gamedex.WithPath(a.config.CatalogPath))
	}

	g, err := gamedex.New(opts...)
	if err != nil {
		a.logger.Error().Err(err).Str("catalog", a.config.CatalogPath).
			Msg("Failed to load catalog document")
		return nil, err
	}

	a.gamedex = g
	return g, nil
}
