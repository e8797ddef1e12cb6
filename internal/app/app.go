package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/bishin/internal/config"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *config.Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the bishin.toml
// configuration already loaded.
func NewApp(outW, logW io.Writer, appConfig *Config) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	cfg, err := config.Load(appConfig.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	logger.Debug("Configuration loaded.",
		"test_dir", cfg.TestDir, "work_dir", cfg.WorkDir)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}, nil
}

// Config returns the loaded file configuration. This is primarily for
// testing.
func (a *App) Config() *config.Config {
	return a.config
}
