// Command trackui-admin is an operational CLI for the track-ui service.
// It talks to the same Redis cache and tracker API the server uses, so
// operators can flush caches, purge sessions, and run bulk mutations
// without going through the HTTP surface.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/offertrack/track-ui-api/config"
	"github.com/offertrack/track-ui-api/internal/bootstrap"
	domainauth "github.com/offertrack/track-ui-api/internal/domain/auth"
)

// adminContext carries shared dependencies into subcommands. Redis and
// services connect lazily so commands that need neither stay cheap.
type adminContext struct {
	Config config.AppConfig
	Logger *slog.Logger

	redisClient redis.UniversalClient
}

func (a *adminContext) Redis() (redis.UniversalClient, error) {
	if a.redisClient != nil {
		return a.redisClient, nil
	}
	client, err := bootstrap.ConnectRedis(bootstrap.RedisOptions{
		Config: a.Config.Redis,
		Logger: a.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	a.redisClient = client
	return client, nil
}

func (a *adminContext) Services() (bootstrap.ServiceContainer, error) {
	return bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config:      &a.Config,
		RedisClient: a.redisClient,
		Logger:      a.Logger,
	})
}

func (a *adminContext) Close() {
	if a.redisClient == nil {
		return
	}
	if err := a.redisClient.Close(); err != nil {
		a.Logger.Warn("close redis failed", "error", err)
	}
}

// actingAs returns a context carrying a synthetic admin session for userID,
// so repository calls are issued on that user's behalf.
func actingAs(ctx context.Context, userID string) context.Context {
	return domainauth.WithSession(ctx, &domainauth.Session{
		ID:        "admin-cli",
		UserID:    userID,
		Username:  "admin-cli",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	admin := &adminContext{Config: cfg, Logger: logger}
	defer admin.Close()

	root := &cobra.Command{
		Use:           "trackui-admin",
		Short:         "Operational tooling for the track-ui service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(CacheCmd(admin))
	root.AddCommand(SessionsCmd(admin))
	root.AddCommand(BulkCmd(admin))
	root.AddCommand(ChartsCmd(admin))
	root.AddCommand(WebhookCmd(admin))

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		admin.Close()
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}
