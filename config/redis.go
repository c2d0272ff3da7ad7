package config

import "time"

// RedisConfig contains Redis connection configuration. Redis backs both the
// session store and the upstream response cache.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelPort       string   `env:"SENTINEL_PORT"        envDefault:"26379"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// CacheConfig controls read-through caching of upstream responses.
type CacheConfig struct {
	// Enabled toggles the cache layer; when false every read hits the
	// tracker API directly.
	Enabled bool `env:"CACHE_ENABLED" envDefault:"true"`

	// TTL bounds staleness for cached reads. Mutations invalidate eagerly,
	// so the TTL only covers writes made outside this service.
	TTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.TTL <= 0 {
		c.TTL = 5 * time.Minute
	}
}
