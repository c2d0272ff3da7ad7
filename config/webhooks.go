package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// WebhooksConfig controls outbound webhook notification delivery.
type WebhooksConfig struct {
	Enabled bool `env:"WEBHOOKS_ENABLED" envDefault:"false"`

	// ConfigPath points at a YAML file listing webhook sinks.
	ConfigPath string `env:"WEBHOOKS_CONFIG_PATH"`

	// AllowedDomains restricts sink URLs by registered domain.
	// Empty allows any host.
	AllowedDomains []string `env:"WEBHOOKS_ALLOWED_DOMAINS" envSeparator:";"`

	// Timeout bounds each sink delivery attempt.
	Timeout time.Duration `env:"WEBHOOKS_TIMEOUT" envDefault:"10s"`
}

// Sanitize normalizes webhook configuration.
func (w *WebhooksConfig) Sanitize() {
	if w.Timeout <= 0 {
		w.Timeout = 10 * time.Second
	}
}

// SinkConfig is one webhook sink entry in the sinks YAML file.
type SinkConfig struct {
	Name     string            `yaml:"name"`
	URL      string            `yaml:"url"`
	Payload  string            `yaml:"payload"`
	Headers  map[string]string `yaml:"headers"`
	OkStatus int               `yaml:"ok_status"`
}

type sinksFile struct {
	Sinks []SinkConfig `yaml:"sinks"`
}

// LoadWebhookSinks reads sink definitions from the YAML file at path.
func LoadWebhookSinks(path string) ([]SinkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read webhook sinks: %w", err)
	}
	var f sinksFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse webhook sinks: %w", err)
	}
	for i, s := range f.Sinks {
		if s.Name == "" {
			return nil, fmt.Errorf("webhook sink %d: name is required", i)
		}
		if s.URL == "" {
			return nil, fmt.Errorf("webhook sink %q: url is required", s.Name)
		}
	}
	return f.Sinks, nil
}
