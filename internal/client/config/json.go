package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mediapp/client-go/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is specified as a Go duration string ("30s", "1m").
type JsonConfig struct {
	GatewayURL        string `json:"gateway_url"`
	APIBaseURL        string `json:"api_base_url"`
	AdminToken        string `json:"admin_token"`
	DatabasePath      string `json:"database_path"`
	RequestTimeout    string `json:"request_timeout"`
	EagerProfileFetch *bool  `json:"eager_profile_fetch"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. Absent flag means no JSON is loaded. Only fields
// present in the file override; read or unmarshal errors panic (the
// config stage has no way to proceed).
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

	if jc.GatewayURL != "" {
		cfg.GatewayURL = jc.GatewayURL
	}
	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.AdminToken != "" {
		cfg.AdminToken = jc.AdminToken
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout != "" {
		if d, err := time.ParseDuration(jc.RequestTimeout); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if jc.EagerProfileFetch != nil {
		cfg.EagerProfileFetch = *jc.EagerProfileFetch
	}
}
