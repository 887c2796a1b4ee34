package config

import "time"

// Config holds runtime settings for the Love OS terminal client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP endpoint.
//   - NicknameCycleInterval: how often the greeting nickname rotates.
type Config struct {
	ServerEndpointAddr    string
	NicknameCycleInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.NicknameCycleInterval = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
