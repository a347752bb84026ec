package config

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))

	assert.Equal(t, Defaults(), cfg)
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	cfg := Load(path)

	assert.Equal(t, Defaults(), cfg)
}

func TestLoadValidJSONTrustedAsIs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_config.json")
	content := `{
		"api_base_url": "http://example.com/api",
		"test_timeout": 60,
		"test_categories": {"api": true}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := Load(path)

	assert.Equal(t, "http://example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 60*time.Second, cfg.Timeout())
	// No merge against defaults: omitted keys stay at their zero value.
	assert.Empty(t, cfg.FrontendURL)
	assert.False(t, cfg.Reporting.HTMLReport)
}

func TestLoadValidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_config.yaml")
	content := `
api_base_url: http://example.com/api
test_timeout: 15
test_categories:
  unit: true
  performance: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := Load(path)

	assert.Equal(t, "http://example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout())
	assert.True(t, cfg.TestCategories["unit"])
	assert.False(t, cfg.TestCategories["performance"])
}

func TestDefaultsAreSelfConsistent(t *testing.T) {
	cfg := Defaults()

	assert.NotEmpty(t, cfg.APIBaseURL)
	assert.NotEmpty(t, cfg.FrontendURL)
	assert.Greater(t, cfg.TestTimeout, 0.0)
	assert.Len(t, cfg.TestCategories, 5)
	assert.Contains(t, cfg.Environments, "local")
	assert.Greater(t, cfg.PerformanceThresholds.APIResponseTime, 0.0)
	assert.Greater(t, cfg.PerformanceThresholds.ConcurrentSuccessRate, 0.0)
	assert.Greater(t, cfg.PerformanceThresholds.MemoryLimitMB, 0.0)
}

func TestEnabledCategories(t *testing.T) {
	cfg := Defaults()

	enabled := cfg.EnabledCategories()
	sort.Strings(enabled)

	assert.Equal(t, []string{"api", "integration", "security", "unit"}, enabled)
}
