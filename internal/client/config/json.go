package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/estudiantes/revista/internal/flagx"
	"github.com/estudiantes/revista/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can spell intervals either as strings like "30s" or
// as integer nanoseconds.
type jsonConfig struct {
	ServerEndpointAddr   string         `json:"server_endpoint_addr"`
	SessionDBPath        string         `json:"session_db_path"`
	RequestTimeout       timex.Duration `json:"request_timeout"`
	SessionCheckInterval timex.Duration `json:"session_check_interval"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. No flag, no JSON: the function simply returns. Only
// fields present in the file override the current values.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionCheckInterval.Duration != 0 {
		cfg.SessionCheckInterval = time.Duration(jc.SessionCheckInterval.Duration)
	}
}
