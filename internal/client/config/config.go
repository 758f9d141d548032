// Package config holds runtime settings for the maintdesk CLI.
//
// Sources are overlaid in order: defaults, JSON config file, environment,
// command-line flags. Later sources win.
package config

import "time"

// Config holds the client's runtime settings.
//
//   - BaseURL: root of the backend REST API, including the version prefix.
//   - RequestTimeout: client-side deadline per request; 0 disables it.
//   - DatabasePath: local sqlite file for the token and filter preferences.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api/v1"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "maintdesk.db"
}

// LoadConfig constructs a Config from all sources.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
