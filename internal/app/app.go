package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/chainctl/internal/cli"
	"github.com/vk/chainctl/internal/ctxlog"
	"github.com/vk/chainctl/internal/help"
	"github.com/vk/chainctl/internal/netconfig"
	"github.com/vk/chainctl/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle for a single CLI invocation.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	registry  *registry.Registry
	formatter *help.Formatter
	executor  Executor
	settings  netconfig.Settings
	config    *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry. A nil
// executor wires the default EchoExecutor over outW.
//
// Startup failures here — an unrecognized network selector, broken
// manifests — are programmer or packaging errors, not user input, so they
// panic; the entrypoint recovers them into a clean exit.
func NewApp(outW, errW io.Writer, cfg *Config, executor Executor) *App {
	if err := cli.ValidateSpec(GlobalFlagSpec); err != nil {
		panic(err)
	}

	// The settings load wants a context logger, but the logging settings
	// come from the load itself. Bootstrap with the process default.
	ctx := context.Background()

	settings, err := netconfig.Load(ctx, cfg.Network, cfg.ConfigPath)
	if err != nil {
		panic(err)
	}

	logger := newLogger(settings.Logging, cfg.Debug, errW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	applyEndpointOverrides(&settings, cfg.Overrides)

	reg := registry.New()
	if err := reg.LoadEmbedded(ctx); err != nil {
		panic(fmt.Errorf("failed to load embedded command manifests: %w", err))
	}
	if cfg.ManifestDir != "" {
		if err := reg.LoadDirectory(ctx, cfg.ManifestDir); err != nil {
			panic(fmt.Errorf("failed to load command manifests from %s: %w", cfg.ManifestDir, err))
		}
	}
	if err := reg.ValidateRegistry(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.", "commands", reg.Len())

	if executor == nil {
		executor = &EchoExecutor{W: outW}
	}

	return &App{
		outW:      outW,
		logger:    logger,
		registry:  reg,
		formatter: help.New(reg),
		executor:  executor,
		settings:  settings,
		config:    cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// applyEndpointOverrides folds the -H/-I/-T flag values into the network
// settings and removes them from the override map, so the executor sees
// each override exactly once.
func applyEndpointOverrides(settings *netconfig.Settings, overrides map[string]string) {
	if v, ok := overrides["api_url"]; ok {
		settings.APIURL = v
		delete(overrides, "api_url")
	}
	if v, ok := overrides["node_url"]; ok {
		settings.NodeURL = v
		delete(overrides, "node_url")
	}
	if v, ok := overrides["broadcast_service_url"]; ok {
		settings.BroadcastServiceURL = v
		delete(overrides, "broadcast_service_url")
	}
}
