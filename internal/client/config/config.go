package config

import "time"

// Config holds runtime settings for the store-rating client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including any path
//     prefix (e.g. "http://localhost:5000/api").
//   - RequestTimeout: fixed per-request deadline for every API call.
//   - DatabasePath: location of the local SQLite file holding persisted
//     session state.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
