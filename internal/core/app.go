package core

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/example/dexnorm/internal/config"
	"github.com/example/dexnorm/internal/logging"
	"github.com/example/dexnorm/internal/mangadex"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// App holds the core components of the application that are shared
// between the server and the CLI.
type App struct {
	Config  *config.Config
	Log     *zap.Logger
	Parser  *mangadex.Parser
	Version string
}

// New sets up and returns a new App instance. It handles loading the
// configuration, building the logger and constructing the parser.
func New(component string) (*App, error) {
	// Load configuration from config.yml
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(component, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	logger.Info("core application setup complete",
		zap.Strings("languages", cfg.Languages))
	return &App{
		Config:  cfg,
		Log:     logger,
		Parser:  mangadex.New(cfg.Languages),
		Version: Version,
	}, nil
}

// Close flushes any buffered log output.
func (a *App) Close() {
	if a.Log != nil {
		a.Log.Sync()
	}
}
