package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment keep precedence over the file.
//
// Recognized variables: GATEWAY_URL, API_BASE_URL, ADMIN_TOKEN,
// CLIENT_DB_PATH, REQUEST_TIMEOUT (Go duration), EAGER_PROFILE_FETCH
// (boolean).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("GATEWAY_URL"); v != "" {
		cfg.GatewayURL = v
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		cfg.AdminToken = v
	}
	if v := os.Getenv("CLIENT_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("EAGER_PROFILE_FETCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EagerProfileFetch = b
		}
	}
}
