// Package config builds the application configuration from environment
// variables. The resulting Config is constructed once at startup and
// passed into every component that performs an external fetch; nothing
// reads the environment after that.
package config

import (
	"fmt"
	"os"
)

// TMDB holds configuration for The Movie Database API.
type TMDB struct {
	APIKey   string
	BaseURL  string
	Language string
}

// IPTV holds credentials for the Xtream playback provider.
type IPTV struct {
	Domain   string
	Username string
	Password string
}

// Config is the top-level application configuration.
type Config struct {
	ListenAddr string
	TMDB       TMDB
	IPTV       IPTV
}

// Load reads configuration from the environment. TMDB_API_KEY,
// IPTV_DOMAIN, IPTV_USERNAME and IPTV_PASSWORD are required; the rest
// fall back to defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr: envOr("LISTEN_ADDR", ":8080"),
		TMDB: TMDB{
			APIKey:   os.Getenv("TMDB_API_KEY"),
			BaseURL:  envOr("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
			Language: envOr("TMDB_LANGUAGE", "pt-BR"),
		},
		IPTV: IPTV{
			Domain:   os.Getenv("IPTV_DOMAIN"),
			Username: os.Getenv("IPTV_USERNAME"),
			Password: os.Getenv("IPTV_PASSWORD"),
		},
	}

	for _, required := range []struct {
		name, value string
	}{
		{"TMDB_API_KEY", cfg.TMDB.APIKey},
		{"IPTV_DOMAIN", cfg.IPTV.Domain},
		{"IPTV_USERNAME", cfg.IPTV.Username},
		{"IPTV_PASSWORD", cfg.IPTV.Password},
	} {
		if required.value == "" {
			return nil, fmt.Errorf("%s environment variable is required", required.name)
		}
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
