package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/offertrack/track-ui-api/config"
	httpx "github.com/offertrack/track-ui-api/internal/http"
	"github.com/offertrack/track-ui-api/internal/observability/statsd"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	services := httpx.RouterServices{
		Processes:     cfg.Services.Processes,
		Stages:        cfg.Services.Stages,
		Charts:        cfg.Services.Charts,
		Bulk:          cfg.Services.Bulk,
		Share:         cfg.Services.Share,
		Profiles:      cfg.Services.Profiles,
		Comments:      cfg.Services.Comments,
		Notifications: cfg.Services.Notifications,
		Feedback:      cfg.Services.Feedback,
		CookieDomain:  appCfg.HTTP.CookieDomain,
		Logger:        logger,

		CompressionEnabled: appCfg.HTTP.CompressionEnabled,
		CompressionLevel:   appCfg.HTTP.CompressionLevel,
	}
	if cfg.Services.Auth != nil {
		services.Auth = cfg.Services.Auth
	}
	if sink := cfg.Services.Observability.MetricsSink; sink != nil {
		services.Metrics = sink
	}

	if appCfg.HTTP.CompressionEnabled {
		logger.Info("HTTP compression enabled", "level", appCfg.HTTP.CompressionLevel)
	}

	handler := httpx.NewRouter(services)

	// Start server (logs "starting HTTP server" internally)
	return startServer(logger, handler, appCfg.HTTP.Addr)
}

func startServer(logger *slog.Logger, handler http.Handler, addr string) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	Metrics *statsd.Client
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(cfg.Context, 10*time.Second)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if cfg.Metrics != nil {
		if err := cfg.Metrics.Close(); err != nil && cfg.Logger != nil {
			cfg.Logger.Warn("failed to close metrics sink", "error", err)
		}
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}

	return nil
}
