package config

import (
	"time"
)

// Config holds runtime settings for the NutriApp CLI.
//
// Fields:
//   - APIBaseURL: base URL of the meal backend (history, analysis, export).
//   - AuthBaseURL: base URL of the auth provider.
//   - AuthAPIKey: public API key sent with auth requests.
//   - RequestTimeout: per-request HTTP timeout.
//   - CachePath: location of the local history cache database.
//   - ExportDir: directory where exported history files are written.
type Config struct {
	APIBaseURL     string
	AuthBaseURL    string
	AuthAPIKey     string
	RequestTimeout time.Duration
	CachePath      string
	ExportDir      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.AuthBaseURL = ""
	c.AuthAPIKey = ""
	c.RequestTimeout = 30 * time.Second
	c.CachePath = "nutricli.db"
	c.ExportDir = "exports"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), a JSON file (if
// present), and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
