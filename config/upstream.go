package config

import "time"

// UpstreamConfig contains configuration for the tracker API client.
// All reads and writes flow through this remote API; there is no local
// database.
type UpstreamConfig struct {
	// BaseURL is the root of the tracker API (e.g., "https://api.tracker.example.com").
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000"`

	// ServiceToken authenticates this service to the tracker API.
	ServiceToken string `env:"SERVICE_TOKEN"`

	// Timeout bounds each individual request to the tracker API.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// DetailFetchLimit caps how many process detail requests run
	// concurrently when assembling dashboards.
	DetailFetchLimit int `env:"DETAIL_FETCH_LIMIT" envDefault:"5"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	if u.Timeout <= 0 {
		u.Timeout = 10 * time.Second
	}
	if u.DetailFetchLimit < 1 {
		u.DetailFetchLimit = 1
	}
	const maxDetailFetchLimit = 32
	if u.DetailFetchLimit > maxDetailFetchLimit {
		u.DetailFetchLimit = maxDetailFetchLimit
	}
}
