// Package config centralizes Viper configuration for the cinetech CLI.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyStorageDriver = "storage.driver"
	KeyStoragePath   = "storage.path"
	KeyOMDBAPIKey    = "omdb.api_key"
	KeyOMDBBaseURL   = "omdb.base_url"
)

// Storage driver values.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// SetDefaults registers default configuration values.
func SetDefaults() {
	viper.SetDefault(KeyStorageDriver, DriverFile)
	viper.SetDefault(KeyStoragePath, defaultDataDir())
	// Public demonstration key; set OMDB_API_KEY for real use.
	viper.SetDefault(KeyOMDBAPIKey, "thewdb")
	viper.SetDefault(KeyOMDBBaseURL, "https://www.omdbapi.com/")
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// defaultDataDir resolves the default catalog data directory.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cinetech"
	}
	return filepath.Join(home, ".cinetech")
}
