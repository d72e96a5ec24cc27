// Package app wires the dispatcher, gateway, configuration, and telemetry
// into a runnable process.
package app

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"timemcp/internal/infra/config"
	"timemcp/internal/infra/dispatcher"
	"timemcp/internal/infra/gateway"
	"timemcp/internal/infra/telemetry"
)

type App struct {
	logger *zap.Logger
	level  zap.AtomicLevel
	// levelPinned is set when --log-level was given explicitly; the config
	// file then no longer controls the level.
	levelPinned bool
}

func New(logger *zap.Logger, level zap.AtomicLevel, levelPinned bool) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		logger:      logger.Named("app"),
		level:       level,
		levelPinned: levelPinned,
	}
}

type ServeConfig struct {
	ConfigPath string
}

// Serve runs the MCP server until the context is canceled or the transport
// closes. Startup failures are returned; the caller decides process exit.
func (a *App) Serve(ctx context.Context, serveCfg ServeConfig) error {
	cfg, err := config.Load(serveCfg.ConfigPath)
	if err != nil {
		return err
	}
	a.applyLogging(cfg)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	registry := prometheus.NewRegistry()
	metrics := telemetry.NewPrometheusMetrics(registry)
	health := telemetry.NewHealthTracker()

	d := dispatcher.New(dispatcher.Config{
		Logger:  a.logger,
		Metrics: metrics,
	})
	server := gateway.NewServer(d, a.logger)

	obsErr := make(chan error, 1)
	go func() {
		obsErr <- telemetry.StartHTTPServer(runCtx, telemetry.HTTPServerOptions{
			Addr:          cfg.Observability.ListenAddress,
			EnableMetrics: cfg.Observability.Metrics,
			EnableHealthz: cfg.Observability.Healthz,
			Health:        health,
			Registry:      registry,
		}, a.logger)
	}()

	if serveCfg.ConfigPath != "" {
		watcher := config.NewWatcher(serveCfg.ConfigPath, a.applyLogging, a.logger)
		go func() {
			if err := watcher.Run(runCtx); err != nil {
				a.logger.Warn("config watcher stopped", zap.Error(err))
			}
		}()
	}

	health.SetReady("gateway", true)
	err = server.Run(runCtx)
	health.SetReady("gateway", false)
	cancel()

	// An interrupt-driven shutdown is orderly, not a failure.
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if obs := <-obsErr; obs != nil && err == nil {
		err = obs
	}
	return err
}

// ValidateConfig checks that the config file parses without serving.
func (a *App) ValidateConfig(path string) error {
	_, err := config.Load(path)
	return err
}

func (a *App) applyLogging(cfg config.Config) {
	if a.levelPinned {
		return
	}
	parsed, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		a.logger.Warn("invalid logging level in config", zap.String("level", cfg.Logging.Level))
		return
	}
	a.level.SetLevel(parsed)
}
