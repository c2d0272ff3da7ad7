package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"

	"github.com/offertrack/track-ui-api/config"
	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/data"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	"github.com/offertrack/track-ui-api/internal/observability/statsd"
	"github.com/offertrack/track-ui-api/internal/service"
	"github.com/offertrack/track-ui-api/internal/upstream"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Processes     *service.ProcessService
	Stages        *service.StageService
	Dashboard     *service.DashboardService
	Charts        *service.ChartService
	Bulk          *service.BulkService
	Share         *service.ShareService
	Profiles      *service.ProfileService
	Comments      *service.CommentService
	Notifications *service.NotificationService
	Feedback      *service.FeedbackService
	Auth          *service.AuthService
	Observability ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups the tracker API adapters backing service ports.
type serviceRepositories struct {
	Redis         redis.UniversalClient
	Processes     core.ProcessRepository
	Stages        core.StageRepository
	Profiles      core.ProfileRepository
	Comments      core.CommentRepository
	Notifications core.NotificationRepository
	Feedback      core.FeedbackRepository
}

// buildObservability configures the metrics sink.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	obsLogger := logger
	if obsLogger == nil {
		obsLogger = slog.Default()
	}

	var metricsSink *statsd.Client
	if cfg.Metrics.IsEnabled() {
		client, err := statsd.NewClient(statsd.Config{
			Enabled: true,
			Address: cfg.Metrics.StatsdAddress,
			Prefix:  "trackui",
			Logger:  obsLogger,
		})
		if err != nil {
			obsLogger.Error("failed to initialise statsd client", "error", err)
		} else {
			metricsSink = client
		}
	}

	return ObservabilityContainer{
		MetricsSink:   metricsSink,
		MetricsConfig: cfg.Metrics,
	}
}

// buildRepositories builds the tracker API clients backing service ports,
// wrapped in Redis cache decorators when caching is enabled.
func buildRepositories(
	cfg *config.AppConfig,
	redisClient redis.UniversalClient,
	logger *slog.Logger,
) (*serviceRepositories, error) {
	client, err := upstream.NewClient(upstream.Options{
		BaseURL:    cfg.Upstream.BaseURL,
		Tokens:     oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Upstream.ServiceToken}),
		HTTPClient: &http.Client{Timeout: cfg.Upstream.Timeout},
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create tracker api client: %w", err)
	}

	repos := &serviceRepositories{
		Redis:         redisClient,
		Processes:     upstream.NewProcessClient(client),
		Stages:        upstream.NewStageClient(client),
		Profiles:      upstream.NewProfileClient(client),
		Comments:      upstream.NewCommentClient(client),
		Notifications: upstream.NewNotificationClient(client),
		Feedback:      upstream.NewFeedbackClient(client),
	}

	if cfg.Cache.Enabled && redisClient != nil {
		cache := data.NewRedisCacheRepo(redisClient)
		repos.Stages = data.NewCachedStageRepo(data.CachedStageRepoOptions{
			Inner:  repos.Stages,
			Cache:  cache,
			Logger: logger,
		})
		repos.Processes = data.NewCachedProcessRepo(data.CachedProcessRepoOptions{
			Inner:  repos.Processes,
			Cache:  cache,
			TTL:    cfg.Cache.TTL,
			Logger: logger,
		})
	}

	return repos, nil
}

// buildPalette loads the stage color palette, falling back to the built-in
// one when no file is configured or loading fails.
func buildPalette(path string, logger *slog.Logger) *model.StagePalette {
	if path == "" {
		return model.DefaultStagePalette()
	}
	palette, err := model.LoadStagePaletteFile(path)
	if err != nil {
		logger.Warn("failed to load stage palette, using defaults", "path", path, "error", err)
		return model.DefaultStagePalette()
	}
	return palette
}

// buildLocation resolves the configured chart timezone, falling back to UTC.
func buildLocation(name string, logger *slog.Logger) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("invalid chart timezone, using UTC", "timezone", name, "error", err)
		return time.UTC
	}
	return loc
}

// BuildDispatcher wires the outbound webhook dispatcher from configuration.
// Returns nil when webhooks are disabled or misconfigured; comment
// interactions then skip outbound dispatch.
//
//nolint:ireturn // Dispatcher port keeps the comment service decoupled from delivery.
func BuildDispatcher(cfg config.WebhooksConfig, logger *slog.Logger) core.NotificationDispatcher {
	if !cfg.Enabled || cfg.ConfigPath == "" {
		return nil
	}

	sinkConfigs, err := config.LoadWebhookSinks(cfg.ConfigPath)
	if err != nil {
		logger.Warn("failed to load webhook sinks, dispatch disabled", "path", cfg.ConfigPath, "error", err)
		return nil
	}

	sinks := make([]service.WebhookSink, 0, len(sinkConfigs))
	for _, s := range sinkConfigs {
		sinks = append(sinks, service.WebhookSink{
			Name:        s.Name,
			URL:         s.URL,
			PayloadExpr: s.Payload,
			Headers:     s.Headers,
			OkStatus:    s.OkStatus,
		})
	}

	dispatcher, err := service.NewWebhookDispatcher(service.WebhookDispatcherOptions{
		Sinks:          sinks,
		AllowedDomains: cfg.AllowedDomains,
		HTTPClient:     &http.Client{Timeout: cfg.Timeout},
		Logger:         logger,
	})
	if err != nil {
		logger.Warn("invalid webhook sink configuration, dispatch disabled", "error", err)
		return nil
	}

	logger.Info("webhook dispatch enabled", "sinks", len(sinks))
	return dispatcher
}

// DomainServicesOptions groups inputs for buildDomainServices.
type DomainServicesOptions struct {
	Repos         *serviceRepositories
	Observability ObservabilityContainer
	Config        *config.AppConfig
	Logger        *slog.Logger
}

// buildDomainServices wires business services using repositories and adapters.
func buildDomainServices(opts *DomainServicesOptions) ServiceContainer {
	if opts == nil || opts.Repos == nil {
		return ServiceContainer{}
	}
	svcLogger := opts.Logger
	if svcLogger == nil {
		svcLogger = slog.Default()
	}

	appCfg := opts.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	dashboard := service.NewDashboardService(service.DashboardServiceOptions{
		Processes:  opts.Repos.Processes,
		FetchLimit: appCfg.Upstream.DetailFetchLimit,
		Logger:     svcLogger,
	})
	charts := service.NewChartService(service.ChartServiceOptions{
		Source:   dashboard,
		Palette:  buildPalette(appCfg.Charts.PaletteFile, svcLogger),
		Location: buildLocation(appCfg.Charts.TimeZone, svcLogger),
	})

	authService := BuildAuthService(AuthConfig{
		Auth:        appCfg.Auth,
		RedisClient: opts.Repos.Redis,
		Logger:      svcLogger,
	})

	return ServiceContainer{
		Processes: service.NewProcessService(service.ProcessServiceOptions{Repo: opts.Repos.Processes}),
		Stages:    service.NewStageService(service.StageServiceOptions{Stages: opts.Repos.Stages}),
		Dashboard: dashboard,
		Charts:    charts,
		Bulk: service.NewBulkService(service.BulkServiceOptions{
			Processes: opts.Repos.Processes,
			Logger:    svcLogger,
		}),
		Share: service.NewShareService(service.ShareServiceOptions{
			Processes: opts.Repos.Processes,
			Charts:    charts,
		}),
		Profiles: service.NewProfileService(service.ProfileServiceOptions{
			Profiles: opts.Repos.Profiles,
			Charts:   charts,
		}),
		Comments: service.NewCommentService(service.CommentServiceOptions{
			Comments:   opts.Repos.Comments,
			Dispatcher: BuildDispatcher(appCfg.Webhooks, svcLogger),
			Logger:     svcLogger,
		}),
		Notifications: service.NewNotificationService(service.NotificationServiceOptions{Repo: opts.Repos.Notifications}),
		Feedback:      service.NewFeedbackService(service.FeedbackServiceOptions{Repo: opts.Repos.Feedback}),
		Auth:          authService,
		Observability: opts.Observability,
	}
}

// NewServices builds the full service container from loaded configuration.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, fmt.Errorf("service dependencies are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	observability := buildObservability(logger, deps.Config.Observability)
	repos, err := buildRepositories(deps.Config, deps.RedisClient, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	return buildDomainServices(&DomainServicesOptions{
		Repos:         repos,
		Observability: observability,
		Config:        deps.Config,
		Logger:        logger,
	}), nil
}
