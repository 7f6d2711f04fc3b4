package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, 4, cfg.Demo.Size)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Logging.Level)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n  json: true\ndemo:\n  size: 8\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
	assert.Equal(t, 8, cfg.Demo.Size)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		t.Setenv("ARRAYMOD_LOG_LEVEL", "warn")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("env beats file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("demo:\n  size: 8\n"), 0o644))
		t.Setenv("ARRAYMOD_DEMO_SIZE", "16")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 16, cfg.Demo.Size)
	})

	t.Run("bad size ignored", func(t *testing.T) {
		t.Setenv("ARRAYMOD_DEMO_SIZE", "banana")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Demo.Size)
	})

	t.Run("json flag", func(t *testing.T) {
		t.Setenv("ARRAYMOD_LOG_JSON", "true")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.True(t, cfg.Logging.JSON)
	})
}

func TestValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demo:\n  size: -1\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
