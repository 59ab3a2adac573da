// Package cmd implements the curio command line host. The host owns
// everything external to the registry core: configuration, logging, the
// caller identity checks on burn and transfer, and the translation of
// typed registry errors into user-facing output.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/curiolabs/curio/internal/asset"
	"github.com/curiolabs/curio/internal/cachemanager"
	"github.com/curiolabs/curio/internal/config"
	"github.com/curiolabs/curio/internal/log"
	"github.com/curiolabs/curio/internal/registry"
	"github.com/curiolabs/curio/internal/storage"
	"github.com/curiolabs/curio/internal/storage/bolt"
	"github.com/curiolabs/curio/internal/storage/memory"
	"github.com/curiolabs/curio/internal/storage/sqlite"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "curio",
	Short:   "A registry for unique, content-addressed assets",
	Long: `curio tracks non-fungible assets identified by the hash of their
attributes. Assets are minted to an owner, transferred between owners, and
burned, under a global and a per-owner capacity limit.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/curio/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to the configured log file")
	rootCmd.PersistentFlags().String("store", "",
		"store backend: bolt, sqlite, or memory")
	rootCmd.PersistentFlags().String("db", "",
		"database file path")

	_ = viper.BindPFlag("store.backend", rootCmd.PersistentFlags().Lookup("store"))
	_ = viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("store.backend", defaults.Store.Backend)
	viper.SetDefault("store.path", defaults.Store.Path)
	viper.SetDefault("limits.asset_limit", defaults.Limits.AssetLimit)
	viper.SetDefault("limits.user_asset_limit", defaults.Limits.UserAssetLimit)
	viper.SetDefault("log.path", defaults.Log.Path)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .curio/config.yaml (current directory)
		// 2. ~/.config/curio/config.yaml (user config)
		if _, err := os.Stat(".curio/config.yaml"); err == nil {
			viper.SetConfigFile(".curio/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "curio"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".curio/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if debug || os.Getenv("CURIO_DEBUG") != "" {
		if _, err := log.Init(cfg.Log.Path); err != nil {
			fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
		}
	} else {
		log.SetEnabled(false)
	}
}

// openRegistry builds the registry from the loaded configuration.
// The returned cleanup function closes the store.
func openRegistry() (*registry.Registry, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	limits, err := cfg.ParseLimits()
	if err != nil {
		return nil, nil, err
	}

	var store storage.Store
	switch cfg.Store.Backend {
	case config.BackendBolt:
		store, err = bolt.Open(cfg.Store.Path)
	case config.BackendSQLite:
		store, err = sqlite.Open(cfg.Store.Path)
	case config.BackendMemory:
		store = memory.New()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	log.Debug(log.CatStore, "store opened", "backend", cfg.Store.Backend, "path", cfg.Store.Path)

	cache := cachemanager.NewInMemoryCacheManager[string, asset.Info](
		"asset-info", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)

	reg, err := registry.New(store, limits, registry.WithCache(cache))
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	cleanup := func() { _ = store.Close() }
	return reg, cleanup, nil
}

// requireOwner rejects a mutation when the calling account does not own
// the asset. The registry core does not authenticate callers; that check
// belongs here in the host layer.
func requireOwner(reg *registry.Registry, from asset.AccountID, id asset.ID) error {
	owner, err := reg.OwnerOf(id)
	if err != nil {
		return err
	}
	if owner != from {
		return fmt.Errorf("account %s does not own asset %s", from, id)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
