package config

import (
	"flag"
	"os"
	"time"

	"github.com/estudiantes/revista/internal/flagx"
)

// parseFlags overlays cfg with values from command-line flags. Only the flags
// owned by this package are parsed; everything else on os.Args is filtered
// out first so the CLI keeps control of its own arguments.
func parseFlags(cfg *Config) {
	var (
		addr     string
		dbPath   string
		timeout  time.Duration
		interval time.Duration
	)

	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-i"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&addr, "a", "", "journal API base URL")
	fs.StringVar(&dbPath, "d", "", "session database path")
	fs.DurationVar(&timeout, "t", 0, "request timeout")
	fs.DurationVar(&interval, "i", 0, "session check interval")
	_ = fs.Parse(args)

	if addr != "" {
		cfg.ServerEndpointAddr = addr
	}
	if dbPath != "" {
		cfg.SessionDBPath = dbPath
	}
	if timeout != 0 {
		cfg.RequestTimeout = timeout
	}
	if interval != 0 {
		cfg.SessionCheckInterval = interval
	}
}
