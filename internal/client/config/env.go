package config

import (
	"os"
	"time"
)

// Environment variable names.
const (
	envBaseURL = "MAINTDESK_API_URL"
	envTimeout = "MAINTDESK_REQUEST_TIMEOUT"
	envDBPath  = "MAINTDESK_DB_PATH"
)

// parseEnv overlays cfg with environment values. Unset or empty variables
// leave the current value in place; an unparseable timeout is ignored rather
// than fatal, since the environment is often inherited.
func parseEnv(cfg *Config) {
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envDBPath); v != "" {
		cfg.DatabasePath = v
	}
}
