// nolint: funlen
package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mflix/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("loads config from environment variables", func(t *testing.T) {
		envVars := map[string]string{
			"APP_ENV":                 "test",
			"PORT":                    "8080",
			"SENTRY_DSN":              "https://test@sentry.io/123",
			"ALLOW_ORIGINS":           "*",
			"RATE_LIMIT":              "50",
			"MOVIES_PER_PAGE":         "10",
			"MONGO_URI":               "mongodb://mongo:27017",
			"MONGO_DATABASE":          "mflix_test",
			"MONGO_CONNECT_TIMEOUT":   "3s",
			"MONGO_OPERATION_TIMEOUT": "500ms",
		}
		for key, value := range envVars {
			t.Setenv(key, value)
		}

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "https://test@sentry.io/123", cfg.SentryDSN)
		assert.Equal(t, "*", cfg.AllowOrigins)
		assert.Equal(t, 50, cfg.RateLimit)
		assert.Equal(t, 10, cfg.MoviesPerPage)
		assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
		assert.Equal(t, "mflix_test", cfg.Mongo.Database)
		assert.Equal(t, 3*time.Second, cfg.Mongo.ConnectTimeout)
		assert.Equal(t, 500*time.Millisecond, cfg.Mongo.OperationTimeout)
	})

	t.Run("applies defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "MONGO_URI", "MONGO_DATABASE", "MOVIES_PER_PAGE"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8000, cfg.Port)
		assert.Equal(t, 20, cfg.MoviesPerPage)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
		assert.Equal(t, "sample_mflix", cfg.Mongo.Database)
	})

	t.Run("handles invalid port number", func(t *testing.T) {
		t.Setenv("PORT", "invalid")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})

	t.Run("handles invalid timeout", func(t *testing.T) {
		t.Setenv("MONGO_OPERATION_TIMEOUT", "soon")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})
}
