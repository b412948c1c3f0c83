package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide flag defaults.
const (
	EnvDB       = "JEWELS_DB"
	EnvConfig   = "JEWELS_CONFIG"
	EnvLogLevel = "JEWELS_LOG_LEVEL"
	EnvLogFile  = "JEWELS_LOG_FILE"
)

// LoadEnv reads KEY=value pairs from the given files (".env" when none are
// given) into the process environment. Variables already set win. Missing
// files are not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Getenv returns the value of key, or def when it is unset or empty.
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
