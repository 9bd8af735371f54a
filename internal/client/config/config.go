// Package config holds runtime settings for the MediApp client. Sources
// are layered: built-in defaults, then environment (including a local
// .env), then an optional JSON file, then command-line flags. Later
// sources win.
package config

import "time"

type Config struct {
	// GatewayURL is the MediApp gateway root, e.g. "http://localhost:8550".
	GatewayURL string

	// APIBaseURL overrides the full API base when set, e.g.
	// "http://localhost:8550/api/v1". When empty the base is derived from
	// GatewayURL plus the standard /api/v1 prefix.
	APIBaseURL string

	// AdminToken authorizes admin-only endpoints (doctor registration).
	AdminToken string

	// DatabasePath locates the local SQLite database holding persisted
	// session state.
	DatabasePath string

	// RequestTimeout bounds each gateway call.
	RequestTimeout time.Duration

	// EagerProfileFetch selects the eager session variant; see the
	// session package.
	EagerProfileFetch bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GatewayURL = "http://localhost:8550"
	c.APIBaseURL = ""
	c.AdminToken = "change-me"
	c.DatabasePath = "mediapp.db"
	c.RequestTimeout = 30 * time.Second
	c.EagerProfileFetch = false
}

// BaseURL resolves the effective API base address.
func (c *Config) BaseURL() string {
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return c.GatewayURL + "/api/v1"
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
