package config

import "time"

// Config holds runtime settings for the revista CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the journal API, including the /api prefix.
//   - SessionDBPath: path of the local sqlite database holding the session token.
//   - RequestTimeout: per-request timeout for collaborator calls.
//   - SessionCheckInterval: how often the session watcher revalidates the token.
type Config struct {
	ServerEndpointAddr   string
	SessionDBPath        string
	RequestTimeout       time.Duration
	SessionCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8000/api"
	c.SessionDBPath = "session.db"
	c.RequestTimeout = 30 * time.Second
	c.SessionCheckInterval = 60 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
