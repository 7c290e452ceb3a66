// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/comicrawl/comicrawl/constant"
	"github.com/comicrawl/comicrawl/filesystem"
	"github.com/comicrawl/comicrawl/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "COMICRAWL_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden via the COMICRAWL_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the absolute path to the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// SavedData resolves the directory holding raw pages saved by the listing cache.
func SavedData() string {
	return ensureDir(filepath.Join(Cache(), "saved_data"))
}

// Listing resolves the path of the cached top-level listing page.
// The directory is not created here; the listing cache does that on first write.
func Listing() string {
	if custom := viper.GetString(key.CacheListingPath); custom != "" {
		return custom
	}
	return filepath.Join(SavedData(), "weekday.html")
}

// Episodes resolves the path of the persisted episode snapshot registry.
func Episodes() string {
	return filepath.Join(Cache(), "episodes.json")
}
