package config

// ChartsConfig controls chart rendering defaults.
type ChartsConfig struct {
	// PaletteFile is an optional YAML file overriding the built-in
	// stage color palette.
	PaletteFile string `env:"CHART_PALETTE_FILE"`

	// TimeZone is the IANA time zone used when bucketing timeline
	// points by day.
	TimeZone string `env:"CHART_TIMEZONE" envDefault:"UTC"`
}

// Sanitize normalizes chart configuration.
func (c *ChartsConfig) Sanitize() {
	if c.TimeZone == "" {
		c.TimeZone = "UTC"
	}
}
