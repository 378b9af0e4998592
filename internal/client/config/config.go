package config

import "time"

// Config holds runtime settings for the hygiene tracker CLI.
//
// Fields:
//   - ServerURL: base URL of the REST backend.
//   - StorePath: SQLite file holding the persisted session.
//   - RequestTimeout: upper bound for a single API call.
type Config struct {
	ServerURL      string
	StorePath      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.StorePath = "session.db"
	c.RequestTimeout = 10 * time.Second
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
