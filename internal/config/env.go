package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env holds command line defaults taken from the environment.
type Env struct {
	ConfigPath string // SST_CONFIG
	Difficulty string // SST_DIFFICULTY
	Seed       int64  // SST_SEED
	DBPath     string // SST_DB
	LogLevel   string // SST_LOG_LEVEL
	LogFile    string // SST_LOG_FILE
}

// LoadEnv reads the given .env files (default ".env") into the process
// environment without overriding variables that are already set, then
// collects the SST_* variables. Missing files are not an error.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	env := Env{
		ConfigPath: os.Getenv("SST_CONFIG"),
		Difficulty: os.Getenv("SST_DIFFICULTY"),
		DBPath:     os.Getenv("SST_DB"),
		LogLevel:   os.Getenv("SST_LOG_LEVEL"),
		LogFile:    os.Getenv("SST_LOG_FILE"),
	}
	if v := os.Getenv("SST_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Env{}, fmt.Errorf("invalid SST_SEED %q: %w", v, err)
		}
		env.Seed = seed
	}
	if env.LogLevel == "" {
		env.LogLevel = "warn"
	}
	return env, nil
}
