package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/theatre-statements/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "statements.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(config.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Extratos", cfg.Output.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1000, cfg.Pricing.MinLines)
	assert.Equal(t, 4000, cfg.Pricing.MaxLines)
	assert.Equal(t, ",", cfg.Input.CSVDelimiter)
	assert.Empty(t, cfg.Input.Sheet)
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
output:
  dir: out/statements
log:
  level: debug
pricing:
  min_lines: 500
  max_lines: 5000
input:
  sheet: Plays
  csv_delimiter: ";"
`)

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "out/statements", cfg.Output.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 500, cfg.Pricing.MinLines)
	assert.Equal(t, 5000, cfg.Pricing.MaxLines)
	assert.Equal(t, "Plays", cfg.Input.Sheet)
	assert.Equal(t, ";", cfg.Input.CSVDelimiter)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{{{invalid yaml`)

	_, err := config.Load(config.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_RejectsInvertedLineBounds(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
pricing:
  min_lines: 4000
  max_lines: 1000
`)

	_, err := config.Load(config.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_RejectsUnknownLogLevel(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "log:\n  level: chatty\n")

	_, err := config.Load(config.New(), path)
	require.Error(t, err)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "output:\n  dir: from-file\n")
	t.Setenv("STATEMENTS_OUTPUT_DIR", "from-env")

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Output.Dir)
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "Extratos", cfg.Output.Dir)
}
