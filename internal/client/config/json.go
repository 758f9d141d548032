package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/maintdesk/maintdesk/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON config file. The timeout is a
// duration string ("15s", "1m").
type jsonConfig struct {
	BaseURL        string `json:"base_url"`
	RequestTimeout string `json:"request_timeout"`
	DatabasePath   string `json:"database_path"`
}

// parseJSON overlays cfg with values from the file named by -c/-config, if
// any. Missing fields leave the current value in place. Panics on a file
// that exists but cannot be read or parsed: a broken config should stop
// startup, not be silently ignored.
func parseJSON(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
