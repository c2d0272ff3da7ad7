package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Authentication configuration
//   - upstream.go: Tracker API client configuration
//   - redis.go: Session store and cache configuration
//   - http.go: HTTP server configuration
//   - charts.go: Chart palette and timezone configuration
//   - webhooks.go: Outbound notification webhook configuration
type AppConfig struct {
	// IsDev controls development mode behavior (mock auth fallbacks, etc.)
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Authentication configuration
	Auth AuthConfig

	// Upstream tracker API configuration
	Upstream UpstreamConfig `envPrefix:"UPSTREAM_"`

	// Redis configuration (sessions and cache)
	Redis RedisConfig `envPrefix:"REDIS_"`
	Cache CacheConfig

	// HTTP server configuration
	HTTP HTTPConfig

	// Chart configuration
	Charts ChartsConfig

	// Outbound webhook configuration
	Webhooks WebhooksConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Upstream.Sanitize()
	c.Cache.Sanitize()
	c.Charts.Sanitize()
	c.Webhooks.Sanitize()
	c.Observability.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
