package config

import (
	"flag"
	"os"
	"time"

	"github.com/maintdesk/maintdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-t int      request timeout in seconds
//	-d string   path of the local settings database
//
// Args are filtered through flagx.FilterArgs so flags handled elsewhere
// (like -c/-config) do not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend API")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local settings database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
