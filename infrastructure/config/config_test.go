package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"dt0c01.sample.token1", "dt0c01.sample.token2", "test-token"}, cfg.APITokens)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 500, cfg.DefaultPageSize)
	assert.Equal(t, 10000, cfg.MaxDataPoints)
	assert.True(t, cfg.CORSEnabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DT_API_TOKENS", "tok-a, tok-b ,")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_DATA_POINTS", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://grafana.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"tok-a", "tok-b"}, cfg.APITokens)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 0, cfg.MaxDataPoints)
	assert.Equal(t, []string{"http://localhost:3000", "https://grafana.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadValidation(t *testing.T) {
	t.Run("blank token list", func(t *testing.T) {
		t.Setenv("DT_API_TOKENS", " , ,")
		_, err := Load()
		assert.ErrorIs(t, err, ErrNoAPITokens)
	})

	t.Run("non-positive page size", func(t *testing.T) {
		t.Setenv("DEFAULT_PAGE_SIZE", "-1")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	})

	t.Run("negative data point cap", func(t *testing.T) {
		t.Setenv("MAX_DATA_POINTS", "-5")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidMaxPoints)
	})
}
