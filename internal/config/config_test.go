package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_NAME", "APP_ENV", "DEBUG", "HTTP_ADDR", "API_PREFIX",
		"STORE_DRIVER", "DB_DRIVER", "DATABASE_URL", "BOLT_PATH", "CORS_ORIGINS",
		"RABBIT_URL", "RABBIT_EXCHANGE", "RL_ENABLED", "RL_IP_LIMIT", "RL_IP_WINDOW",
		"METRICS_ENABLED", "HTTP_READ_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("should_return_error_if_database_url_is_missing", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load()
		assert.Nil(t, cfg)
		assert.EqualError(t, err, "missing DATABASE_URL")
	})

	t.Run("should_load_defaults_with_database_url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/db")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "Resource API", cfg.AppName)
		assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
		assert.Equal(t, "resource.events", cfg.RabbitExchange)
		assert.Equal(t, "", cfg.APIPrefix)
		assert.True(t, cfg.RLEnabled)
		assert.True(t, cfg.MetricsEnabled)
		assert.Equal(t, 10*time.Second, cfg.HTTPReadTimeout)
	})

	t.Run("memory_store_needs_no_dsn", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_DRIVER", "memory")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	})

	t.Run("bolt_store_needs_path", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_DRIVER", "bolt")

		_, err := Load()
		assert.EqualError(t, err, "missing BOLT_PATH")
	})

	t.Run("unknown_store_driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_DRIVER", "mongo")

		_, err := Load()
		assert.ErrorContains(t, err, "invalid STORE_DRIVER")
	})

	t.Run("unknown_db_driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_URL", "postgres://x")
		t.Setenv("DB_DRIVER", "mysql")

		_, err := Load()
		assert.ErrorContains(t, err, "invalid DB_DRIVER")
	})

	t.Run("list_and_prefix_parsing", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")
		t.Setenv("API_PREFIX", "/api/v1/")
		t.Setenv("DEBUG", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
		assert.Equal(t, "/api/v1", cfg.APIPrefix)
		assert.True(t, cfg.Debug)
	})

	t.Run("rate_limit_must_be_positive", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("RL_IP_LIMIT", "0")

		_, err := Load()
		assert.ErrorContains(t, err, "invalid rate limit")
	})
}

// unsetEnv removes k for the test so godotenv, which never overrides a set
// variable, can fill it from .env.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	unsetEnv(t, "STORE_DRIVER", "LOG_LEVEL", "LOG_FORMAT", "APP_ENV")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("STORE_DRIVER=memory\nLOG_LEVEL=DEBUG\nLOG_FORMAT=json\nAPP_ENV=staging\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "staging", cfg.AppEnv)
}

func TestLoad_LogLevelDefaultsEmpty(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.LogLevel, "empty leaves the choice to DEBUG")
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestGetEnv(t *testing.T) {
	t.Run("should_trim_whitespace", func(t *testing.T) {
		t.Setenv("TEST_KEY", "  value_with_spaces  ")
		assert.Equal(t, "value_with_spaces", getEnv("TEST_KEY", "default"))
	})
}

func TestGetDuration(t *testing.T) {
	t.Run("should_parse_valid_duration", func(t *testing.T) {
		t.Setenv("TEST_DUR", "5s")
		assert.Equal(t, 5*time.Second, getDuration("TEST_DUR", 10*time.Second))
	})

	t.Run("should_return_default_on_invalid_duration", func(t *testing.T) {
		t.Setenv("TEST_DUR", "invalid")
		assert.Equal(t, 10*time.Second, getDuration("TEST_DUR", 10*time.Second))
	})
}

func TestGetBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "nope")
	assert.True(t, getBool("TEST_BOOL", true))
}
