package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/nutriapp/nutricli/internal/flagx"
	"github.com/nutriapp/nutricli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	AuthBaseURL    string         `json:"auth_base_url"`
	AuthAPIKey     string         `json:"auth_api_key"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	CachePath      string         `json:"cache_path"`
	ExportDir      string         `json:"export_dir"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags via flagx.ConfigFileFlag; when no
// path is given nothing is loaded. Only fields present in the JSON override
// the current values. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.AuthBaseURL != "" {
		cfg.AuthBaseURL = jc.AuthBaseURL
	}
	if jc.AuthAPIKey != "" {
		cfg.AuthAPIKey = jc.AuthAPIKey
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CachePath != "" {
		cfg.CachePath = jc.CachePath
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
}
