package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LAYOFFS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "data", cfg.Paths.DataDir)
	require.Len(t, cfg.Cleaning.IndustryRules, 1)
	assert.Equal(t, "Crypto", cfg.Cleaning.IndustryRules[0].Canonical)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
logging:
  level: debug
cleaning:
  industry_rules:
    - prefix: Crypto
      canonical: Crypto
    - prefix: Fin-Tech
      canonical: Finance
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv("LAYOFFS_CONFIG_FILE", configFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.Len(t, cfg.Cleaning.IndustryRules, 2)
	assert.Equal(t, "Finance", cfg.Cleaning.IndustryRules[1].Canonical)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("server:\n  port: 9090\n"), 0644))
	t.Setenv("LAYOFFS_CONFIG_FILE", configFile)
	t.Setenv("LAYOFFS_SERVER_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_InvalidLevel(t *testing.T) {
	t.Setenv("LAYOFFS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("LAYOFFS_LOGGING_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestNewPaths(t *testing.T) {
	dir := t.TempDir()
	paths, err := NewPaths(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data", "raw"), paths.RawDir)
	assert.Equal(t, filepath.Join(dir, "data", "cleaned", "layoffs_cleaned.csv"), paths.CleanedCSV)

	require.NoError(t, paths.EnsureDirectories())
	for _, d := range []string{paths.RawDir, paths.CleanedDir, paths.ReportsDir, paths.LogsDir} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
