package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kurt.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitialize_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, "trafilatura", cfg.Fetch.Engine)
	assert.Equal(t, 5, cfg.Fetch.Concurrency)
	assert.Equal(t, DefaultSimilarityThreshold, cfg.Indexing.SimilarityThreshold)
	assert.Equal(t, "./sources", cfg.Paths.Sources)
}

func TestInitialize_UserValuesOverrideDefaults(t *testing.T) {
	path := writeConfig(t, `
[paths]
sources = "/data/sources"

[fetch]
engine = "httpx"
concurrency = 10

[indexing]
similarity_threshold = 0.92

[queue]
worker_count = 3
poll_interval = "7s"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "/data/sources", cfg.Paths.Sources)
	assert.Equal(t, "httpx", cfg.Fetch.Engine)
	assert.Equal(t, 10, cfg.Fetch.Concurrency)
	assert.Equal(t, 0.92, cfg.Indexing.SimilarityThreshold)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 7*time.Second, cfg.Queue.PollInterval)

	// Untouched sections keep their defaults.
	assert.Equal(t, 100, cfg.Fetch.BatchSize)
	assert.Equal(t, DefaultModel, cfg.Indexing.Model)
}

func TestInitialize_UnknownSectionsPassThroughRaw(t *testing.T) {
	path := writeConfig(t, `
[my_integration]
endpoint = "https://hooks.example.com"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	section, ok := cfg.Raw["my_integration"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "https://hooks.example.com", section["endpoint"])
}

func TestInitialize_PlaceholderCredentialRejected(t *testing.T) {
	path := writeConfig(t, `
[fetch]
tavily_api_key = "YOUR_TAVILY_API_KEY"
`)

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tavily_api_key")
	assert.ErrorIs(t, err, ErrPlaceholderCredential)
}

func TestInitialize_InvalidEngineRejected(t *testing.T) {
	path := writeConfig(t, `
[fetch]
engine = "wget"
`)

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine")
}

func TestInitialize_InvalidTOML(t *testing.T) {
	path := writeConfig(t, `[fetch`)

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTOML)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("KURT_TEST_TAVILY", "tvly-live")
	path := writeConfig(t, `
[fetch]
tavily_api_key = "{{.KURT_TEST_TAVILY}}"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "tvly-live", cfg.Fetch.TavilyAPIKey)
}

func TestInitialize_BadDurationKeepsDefault(t *testing.T) {
	path := writeConfig(t, `
[queue]
poll_interval = "soon"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, DefaultQueueConfig().PollInterval, cfg.Queue.PollInterval)
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, IsConfigured("tvly-abc123"))
	assert.False(t, IsConfigured(""))
	assert.False(t, IsConfigured("YOUR_API_KEY"))
	assert.False(t, IsConfigured("your_api_key"))
}
