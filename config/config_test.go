package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "secret")
	t.Setenv("IPTV_DOMAIN", "http://provider.example")
	t.Setenv("IPTV_USERNAME", "user")
	t.Setenv("IPTV_PASSWORD", "pass")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("TMDB_BASE_URL", "")
	t.Setenv("TMDB_LANGUAGE", "")
	t.Setenv("LISTEN_ADDR", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "pt-BR", cfg.TMDB.Language)
	assert.Equal(t, "secret", cfg.TMDB.APIKey)
	assert.Equal(t, "http://provider.example", cfg.IPTV.Domain)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TMDB_LANGUAGE", "en-US")
	t.Setenv("LISTEN_ADDR", ":9000")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, ":9000", cfg.ListenAddr)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("TMDB_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TMDB_API_KEY")
}

func TestLoadMissingIPTVCredentials(t *testing.T) {
	setRequired(t)
	t.Setenv("IPTV_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "IPTV_PASSWORD")
}
