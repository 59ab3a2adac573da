package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/curiolabs/curio/internal/log"
)

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	defaults := Defaults()
	return fmt.Sprintf(`# curio configuration

store:
  # Storage backend: "bolt", "sqlite", or "memory".
  backend: %s
  # Database file path (ignored by the memory backend).
  path: %s

limits:
  # Global ceiling on live assets. Decimal string; the full unsigned
  # 128-bit range is accepted.
  asset_limit: "%s"
  # Ceiling on assets any single account may own.
  user_asset_limit: %d

log:
  # Debug log file, written when --debug or CURIO_DEBUG is set.
  path: %s
`,
		defaults.Store.Backend,
		defaults.Store.Path,
		defaults.Limits.AssetLimit,
		defaults.Limits.UserAssetLimit,
		defaults.Log.Path,
	)
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
