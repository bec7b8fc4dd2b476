package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	DataDir       string
	DBFile        string
	DBOpenTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
// A .env file in the working directory is loaded first when present.
func FromEnv() Config {
	_ = godotenv.Load()
	return Config{
		DataDir:       envOrDefault("STOREFRONT_DATA_DIR", "data"),
		DBFile:        envOrDefault("STOREFRONT_DB_FILE", "storefront.db"),
		DBOpenTimeout: envDuration("STOREFRONT_DB_OPEN_TIMEOUT_SECONDS", 1*time.Second),
	}
}

// DBPath is the full path of the embedded database file.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// StateDir is where the key-value state files live.
func (c Config) StateDir() string {
	return filepath.Join(c.DataDir, "state")
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
