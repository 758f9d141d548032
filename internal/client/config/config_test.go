package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:8080/api/v1", cfg.BaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "maintdesk.db", cfg.DatabasePath)
}

func TestParseEnvOverlay(t *testing.T) {
	t.Setenv(envBaseURL, "https://maint.example.com/api/v1")
	t.Setenv(envTimeout, "3s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "https://maint.example.com/api/v1", cfg.BaseURL)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	require.Equal(t, "maintdesk.db", cfg.DatabasePath, "unset vars keep defaults")
}

func TestParseEnvIgnoresBadTimeout(t *testing.T) {
	t.Setenv(envTimeout, "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
