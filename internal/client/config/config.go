package config

import "time"

// Config holds runtime settings for the feedbackdesk CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, no trailing slash.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: sqlite file holding the persisted session.
//   - LogLevel: minimum log level (debug, info, warn, error).
//   - LogPretty: human-friendly console log output instead of JSON.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
	LogLevel       string
	LogPretty      bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "feedbackdesk.db"
	c.LogLevel = "info"
	c.LogPretty = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
