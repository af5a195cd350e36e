package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the environment. A .env file in the
// working directory is loaded first when present; real environment variables
// win over the file.
//
// Recognized variables:
//
//	REVISTA_ADDRESS         base URL of the journal API
//	REVISTA_SESSION_DB      path of the local session database
//	REVISTA_REQUEST_TIMEOUT per-request timeout (Go duration, e.g. "30s")
//	REVISTA_CHECK_INTERVAL  session revalidation interval (Go duration)
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("REVISTA_ADDRESS"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv("REVISTA_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv("REVISTA_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("REVISTA_CHECK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionCheckInterval = d
		}
	}
}
