package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "rubik.yaml", "log_level: debug\nlog_format: json\ncolor: false\ncompact: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "debug", LogFormat: "json", Color: false, Compact: true}, cfg)
}

func TestLoadFileKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeFile(t, "rubik.yaml", "compact: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.Compact)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "rubik.yaml", "log_level: debug\ncolor: true\n")
	t.Setenv("RUBIK_LOG_LEVEL", "error")
	t.Setenv("RUBIK_COLOR", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.False(t, cfg.Color)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "bad.yaml", "log_level: [unterminated\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "fmt.yaml", "log_format: xml\n"))
	assert.ErrorContains(t, err, "log_format")

	t.Setenv("RUBIK_COLOR", "maybe")
	_, err = Load("")
	assert.ErrorContains(t, err, "RUBIK_COLOR")
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, LoadEnvFile(""))
	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")))

	// Register cleanup for the variable godotenv sets.
	t.Setenv("RUBIK_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("RUBIK_LOG_FORMAT"))

	path := writeFile(t, ".env", "RUBIK_LOG_FORMAT=json\n")
	require.NoError(t, LoadEnvFile(path))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
}
