// Package config provides configuration types, defaults, and persistence
// for curio.
package config

import (
	"fmt"

	"github.com/curiolabs/curio/internal/asset"
)

// Recognized store backends.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// StoreConfig selects and locates the storage backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // "bolt" (default), "sqlite", or "memory"
	Path    string `mapstructure:"path"`    // database file path; unused for memory
}

// LimitsConfig holds the registry capacity policy.
type LimitsConfig struct {
	// AssetLimit is the global ceiling on live assets, as a decimal
	// string so the full unsigned 128-bit range is expressible.
	AssetLimit string `mapstructure:"asset_limit"`

	// UserAssetLimit is the ceiling on assets any single account may own.
	UserAssetLimit uint64 `mapstructure:"user_asset_limit"`
}

// LogConfig holds host-layer logging options.
type LogConfig struct {
	Path string `mapstructure:"path"` // debug log file path
}

// Config holds all configuration options for curio.
type Config struct {
	Store  StoreConfig  `mapstructure:"store"`
	Limits LimitsConfig `mapstructure:"limits"`
	Log    LogConfig    `mapstructure:"log"`
}

// Defaults returns the configuration used when no config file exists.
// Both ceilings default to their maximum, so an unconfigured registry
// never rejects a mint on capacity grounds.
func Defaults() Config {
	limits := asset.DefaultLimits()
	return Config{
		Store: StoreConfig{
			Backend: BackendBolt,
			Path:    "curio.db",
		},
		Limits: LimitsConfig{
			AssetLimit:     limits.AssetLimit.String(),
			UserAssetLimit: limits.UserAssetLimit,
		},
		Log: LogConfig{
			Path: "curio.log",
		},
	}
}

// Validate checks that the store backend is recognized.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendBolt, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q (want %q, %q, or %q)",
			c.Store.Backend, BackendBolt, BackendSQLite, BackendMemory)
	}
	if c.Store.Backend != BackendMemory && c.Store.Path == "" {
		return fmt.Errorf("store path is required for backend %q", c.Store.Backend)
	}
	return nil
}

// ParseLimits converts the configured limits into the domain policy.
func (c Config) ParseLimits() (asset.Limits, error) {
	return asset.ParseLimits(c.Limits.AssetLimit, c.Limits.UserAssetLimit)
}
