// Package config loads logsift configuration from a YAML file with
// environment variable overrides.
//
// Environment Variables and .env Files:
//
// The package loads .env files before applying environment variable
// overrides, in the following priority order (higher overrides lower):
//
//  1. Environment variable ENV_FILE (if set, loads only this file)
//  2. .env.local (if exists, overrides .env)
//  3. .env (default, always checked if ENV_FILE is not set)
//
// Example config.yml:
//
//	logging:
//	  dir: logs
//	  filename: app.log
//	  max_size_mb: 5
//	  max_backups: 3
//	  level: debug
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/logsift/logger"
)

// Config is the root configuration for the library's consumers.
type Config struct {
	// Logging configures the rotating file loggers.
	Logging logger.Config `yaml:"logging"`
}

// loadEnvFiles loads .env files in priority order. File-not-found is
// not an error; anything else is.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(".env.local"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env.local: %w", err)
	}

	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}

// Load reads a YAML config file, applies .env / environment variable
// overrides, and fills in defaults. A missing config file is an error;
// pass "" to skip the file and configure purely from the environment
// and defaults.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("load environment files: %w", err)
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	cfg.Logging.SetDefaults()
	return &cfg, nil
}

// MustLoad is like Load but panics if an error occurs.
// Use this for initialization where failure should be fatal.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// applyEnvOverrides applies environment variables onto the config.
// Env always wins over file values.
func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Logging.Dir, "LOG_DIR")
	setString(&cfg.Logging.Filename, "LOG_FILE")
	setInt(&cfg.Logging.MaxSizeMB, "LOG_MAX_SIZE_MB")
	setInt(&cfg.Logging.MaxBackups, "LOG_MAX_BACKUPS")
	setInt(&cfg.Logging.MaxAgeDays, "LOG_MAX_AGE_DAYS")
	setBool(&cfg.Logging.Compress, "LOG_COMPRESS")
	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setBool(&cfg.Logging.Stdout, "LOG_STDOUT")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			*dst = i
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
