// Package config reads the CLI settings from the environment, optionally
// seeded from .env files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvLogLevel = "MSXFONT_LOG_LEVEL"
	EnvJSONLog  = "MSXFONT_JSON_LOG"
	EnvScale    = "MSXFONT_SCALE"

	DefaultLogLevel = "warn"
	DefaultScale    = 3
	MaxScale        = 16
)

type Config struct {
	LogLevel string
	JSONLog  bool
	Scale    int
}

// envFiles in priority order; godotenv never overrides a variable that is
// already set, so the first file that defines a key wins.
var envFiles = []string{".env.local", ".env"}

// LoadEnv loads the .env files found in dir. Missing files are skipped.
func LoadEnv(dir string) error {
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
		slog.Debug("config: env file loaded", "path", path)
	}
	return nil
}

// FromEnv reads the configuration from the process environment.
func FromEnv() (*Config, error) {
	c := &Config{
		LogLevel: DefaultLogLevel,
		Scale:    DefaultScale,
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	c.JSONLog = os.Getenv(EnvJSONLog) == "1"
	if v := os.Getenv(EnvScale); v != "" {
		scale, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s=%q: %w", EnvScale, v, err)
		}
		if err := ValidateScale(scale); err != nil {
			return nil, err
		}
		c.Scale = scale
	}
	return c, nil
}

// Load reads .env files from dir and then the environment.
func Load(dir string) (*Config, error) {
	if err := LoadEnv(dir); err != nil {
		return nil, err
	}
	return FromEnv()
}

func ValidateScale(scale int) error {
	if scale < 1 || scale > MaxScale {
		return fmt.Errorf("config: scale %d out of range 1..%d", scale, MaxScale)
	}
	return nil
}
