package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amirasaad/propdesc/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "auto", cfg.Input.Format)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.False(t, cfg.Output.Snapshot)
}

func TestLoad_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PROPDESC_OUTPUT_FORMAT", "json")
	t.Setenv("PROPDESC_LOG_LEVEL", "debug")
	t.Setenv("PROPDESC_INPUT_SNAPSHOT", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Input.Snapshot)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	// godotenv never overrides variables that are already set; register
	// the key with t.Setenv so it is restored, then clear it.
	t.Setenv("PROPDESC_OUTPUT_COLOR", "")
	require.NoError(t, os.Unsetenv("PROPDESC_OUTPUT_COLOR"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.env"), []byte("PROPDESC_OUTPUT_COLOR=false\n"), 0o600))

	cfg, err := config.Load("missing.env", "test.env")
	require.NoError(t, err)
	assert.False(t, cfg.Output.Color)
}

func TestLoad_InvalidValue(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PROPDESC_OUTPUT_FORMAT", "xml")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestApplyFile(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "propdesc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: yaml\nlog:\n  prefix: test\n"), 0o600))

	require.NoError(t, config.ApplyFile(cfg, path))
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "test", cfg.Log.Prefix)
	assert.Equal(t, "info", cfg.Log.Level, "keys missing from the file are kept")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log:\n  level: loud\n"), 0o600))
	require.Error(t, config.ApplyFile(cfg, bad))

	require.Error(t, config.ApplyFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestLocateEnvFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), nil, 0o600))
	chdir(t, sub)

	t.Run("walks up to a parent", func(t *testing.T) {
		found, err := config.LocateEnvFile("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".env"), found)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LocateEnvFile("does-not-exist.env")
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("absolute path is not searched", func(t *testing.T) {
		found, err := config.LocateEnvFile(filepath.Join(dir, ".env"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".env"), found)

		_, err = config.LocateEnvFile(filepath.Join(sub, ".env"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory is skipped", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(sub, "conf.env"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "conf.env"), nil, 0o600))
		found, err := config.LocateEnvFile("conf.env")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "conf.env"), found)
	})
}
