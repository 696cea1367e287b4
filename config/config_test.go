package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := load(nil)
		require.NoError(t, err)

		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.Equal(t, ":8080", cfg.HTTPServerAddr)
		assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
		assert.Equal(t, 3*time.Second, cfg.BackendTimeout)
		assert.Equal(t, "landing", cfg.Metrics.Prefix)
		assert.Empty(t, cfg.Broker.SeedBrokers)
		assert.False(t, cfg.ViewsEnabled())
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		t.Setenv("LANDING_BACKEND_URL", "https://api.sareesanctuary.in")
		t.Setenv("LANDING_LOG_LEVEL", "debug")
		t.Setenv("LANDING_BACKEND_TIMEOUT", "1500ms")
		t.Setenv("LANDING_BROKER_SEED_BROKERS", "kafka-1:9092,kafka-2:9092")
		t.Setenv("LANDING_BROKER_SCHEMA_REGISTRY_URLS", "http://sr:8081")

		cfg, err := load(nil)
		require.NoError(t, err)

		assert.Equal(t, "https://api.sareesanctuary.in", cfg.BackendURL)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Equal(t, 1500*time.Millisecond, cfg.BackendTimeout)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Broker.SeedBrokers)
		assert.Equal(t, []string{"http://sr:8081"}, cfg.Broker.SchemaRegistryURLs)
		assert.True(t, cfg.ViewsEnabled())
	})

	t.Run("ConfigFileFlag", func(t *testing.T) {
		path := writeConfig(t, `
log_level: warn
http_server_addr: ":9000"
backend_url: "http://backend:8000"
broker:
  seed_brokers: ["kafka:9092"]
  schema_registry_urls: ["http://sr:8081"]
  topics:
    landing_views: "views"
`)
		cfg, err := load([]string{"--config", path})
		require.NoError(t, err)

		assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
		assert.Equal(t, ":9000", cfg.HTTPServerAddr)
		assert.Equal(t, "http://backend:8000", cfg.BackendURL)
		assert.Equal(t, []string{"kafka:9092"}, cfg.Broker.SeedBrokers)
		assert.Equal(t, "views", cfg.Broker.Topics.LandingViews)
	})

	t.Run("ConfigFileEnv", func(t *testing.T) {
		path := writeConfig(t, `backend_url: "http://from-env-file:8000"`)
		t.Setenv(configFileEnvName, path)

		cfg, err := load([]string{"--config", "/does/not/exist.yaml"})
		require.NoError(t, err)
		assert.Equal(t, "http://from-env-file:8000", cfg.BackendURL)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		path := writeConfig(t, `backend_urll: "http://typo:8000"`)
		_, err := load([]string{"--config", path})
		require.Error(t, err)
	})

	t.Run("BrokersWithoutRegistry", func(t *testing.T) {
		t.Setenv("LANDING_BROKER_SEED_BROKERS", "kafka:9092")
		_, err := load(nil)
		require.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := load([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
		require.Error(t, err)
	})
}
