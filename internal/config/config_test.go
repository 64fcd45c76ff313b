package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, 0.2, GetFloat("friction"))
	assert.Equal(t, 0.0, GetFloat("slope"))
	assert.Equal(t, 0, GetInt("windScale"))
	assert.Equal(t, 10000, GetInt("sliding.maxAdditional"))
	assert.Equal(t, 4, GetInt("batch.workers"))
	assert.Equal(t, 8.0, GetFloat("plot.width"))
	assert.Equal(t, 6.0, GetFloat("plot.height"))
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := "logLevel: debug\nfriction: 0.35\nsliding:\n  maxAdditional: 50\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "golash.yaml"), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, 0.35, GetFloat("friction"))
	assert.Equal(t, 50, GetInt("sliding.maxAdditional"))
	assert.Equal(t, 4, GetInt("batch.workers"))
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "golash.yaml"), []byte("friction: [unclosed"), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("GOLASH_BATCH_WORKERS", "9")

	require.NoError(t, Load(t.TempDir()))
	assert.Equal(t, 9, GetInt("batch.workers"))
}

func TestLoad_DotEnv(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Cleanup(func() { os.Unsetenv("GOLASH_LOGLEVEL") })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GOLASH_LOGLEVEL=warn\n"), 0644))

	require.NoError(t, Load(dir))
	assert.Equal(t, "warn", GetString("logLevel"))
}
