package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pairspace/loveos/internal/flagx"
	"github.com/pairspace/loveos/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "5s" or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr    string         `json:"server_endpoint_addr"`
	NicknameCycleInterval timex.Duration `json:"nickname_cycle_interval"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flag. With no file configured it is a no-op. Read and
// unmarshal errors panic; the loader runs before anything else at startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

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
	if jc.NicknameCycleInterval.Duration != 0 {
		cfg.NicknameCycleInterval = time.Duration(jc.NicknameCycleInterval.Duration)
	}
}
