package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/curiolabs/curio/internal/config"
)

func TestDefaults_AreValid(t *testing.T) {
	cfg := config.Defaults()

	require.NoError(t, cfg.Validate())

	limits, err := cfg.ParseLimits()
	require.NoError(t, err)
	require.NoError(t, limits.Validate())
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := config.Defaults()
	cfg.Store.Backend = "postgres"

	require.Error(t, cfg.Validate())
}

func TestValidate_MissingPath(t *testing.T) {
	cfg := config.Defaults()
	cfg.Store.Path = ""

	require.Error(t, cfg.Validate(), "file-backed stores need a path")

	cfg.Store.Backend = config.BackendMemory
	require.NoError(t, cfg.Validate(), "the memory backend needs no path")
}

func TestParseLimits_Invalid(t *testing.T) {
	cfg := config.Defaults()
	cfg.Limits.AssetLimit = "not a number"

	_, err := cfg.ParseLimits()
	require.Error(t, err)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".curio", "config.yaml")

	require.NoError(t, config.WriteDefaultConfig(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &parsed), "template must be valid YAML")

	defaults := config.Defaults()
	require.Equal(t, defaults.Store.Backend, parsed["store"]["backend"])
	require.Equal(t, defaults.Limits.AssetLimit, parsed["limits"]["asset_limit"])
}

func TestWriteDefaultConfig_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "config.yaml")

	require.NoError(t, config.WriteDefaultConfig(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
