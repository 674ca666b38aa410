package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first, if one exists; real
// environment variables win over .env entries (godotenv does not override).
//
// Supported variables:
//
//	NUTRICLI_API_URL      base URL of the meal backend
//	NUTRICLI_AUTH_URL     base URL of the auth provider
//	NUTRICLI_AUTH_KEY     public API key for auth requests
//	NUTRICLI_TIMEOUT      per-request timeout, e.g. "30s"
//	NUTRICLI_CACHE_PATH   path to the local cache database
//	NUTRICLI_EXPORT_DIR   directory for exported files
func parseEnv(cfg *Config) {
	// Missing .env is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("NUTRICLI_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("NUTRICLI_AUTH_URL"); v != "" {
		cfg.AuthBaseURL = v
	}
	if v := os.Getenv("NUTRICLI_AUTH_KEY"); v != "" {
		cfg.AuthAPIKey = v
	}
	if v := os.Getenv("NUTRICLI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("NUTRICLI_CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("NUTRICLI_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
}
