package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvAPIKey, EnvMeasurementID, EnvAPISecret, EnvLogLevel,
		"VITE_GEMINI_API_KEY", "VITE_GA_MEASUREMENT_ID"} {
		t.Setenv(name, "")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout())
	assert.Equal(t, time.Hour, cfg.Server.SessionTTL())
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server_addr: ":9090"
log_level: debug
llm:
  provider: openai
  model: gpt-4o-mini
  api_key: file-key
  base_url: https://example.test/v1
analytics:
  measurement_id: G-FILE
server:
  session_ttl_minutes: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "file-key", cfg.LLM.APIKey)
	assert.Equal(t, 60, cfg.LLM.TimeoutSeconds, "unset keys keep their defaults")
	assert.Equal(t, "G-FILE", cfg.Analytics.MeasurementID)
	assert.Equal(t, 5*time.Minute, cfg.Server.SessionTTL())
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  api_key: file-key\n"), 0o600))
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv("VITE_GA_MEASUREMENT_ID", "G-VITE")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.LLM.APIKey)
	assert.Equal(t, "G-VITE", cfg.Analytics.MeasurementID)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  provider: claude\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
