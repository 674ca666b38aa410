// Package config loads runtime configuration for the NutriApp CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the meal backend
//	-t int      request timeout (seconds)
//	-d string   path to the local cache database
//	-e string   directory for exported files
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.example.com",
//	  "auth_base_url": "https://auth.example.com",
//	  "auth_api_key": "public-key",
//	  "request_timeout": "30s",
//	  "cache_path": "nutricli.db",
//	  "export_dir": "exports"
//	}
package config
