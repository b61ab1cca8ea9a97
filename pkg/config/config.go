// Package config holds service configuration loaded from YAML files and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound     = errors.New("configuration file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrEmptyFile        = errors.New("configuration file is empty")
)

// Logging configures the operational logger.
type Logging struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// Config is the full service configuration.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `yaml:"addr"`

	// SigningKey signs minted credential tokens.
	SigningKey string `yaml:"signingKey"`

	// AdmissionLimit is the free-tier request limit per window.
	AdmissionLimit int `yaml:"admissionLimit"`

	// AdmissionWindowSeconds is the free-tier window length in seconds.
	AdmissionWindowSeconds int `yaml:"admissionWindowSeconds"`

	// RedisAddr, when set, switches admission counting to Redis so limits
	// hold across instances. Empty means in-memory counters.
	RedisAddr string `yaml:"redisAddr"`

	// RedisPassword authenticates the Redis connection.
	RedisPassword string `yaml:"redisPassword"`

	// LogQueueSize bounds the request-log dispatcher queue.
	LogQueueSize int `yaml:"logQueueSize"`

	Logging Logging `yaml:"logging"`
}

// Default returns the configuration used when no file or overrides are
// given.
func Default() *Config {
	return &Config{
		Addr:                   ":8080",
		SigningKey:             "secret-key",
		AdmissionLimit:         60,
		AdmissionWindowSeconds: 60,
		LogQueueSize:           1024,
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return cfg, nil
}

// ApplyEnv overlays MOCKLET_* environment variables onto the
// configuration. Environment wins over file values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("MOCKLET_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("MOCKLET_SIGNING_KEY"); v != "" {
		c.SigningKey = v
	}
	if v := os.Getenv("MOCKLET_REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("MOCKLET_REDIS_PASSWORD"); v != "" {
		c.RedisPassword = v
	}
	if v := os.Getenv("MOCKLET_ADMISSION_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.AdmissionLimit = n
		}
	}
	if v := os.Getenv("MOCKLET_ADMISSION_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.AdmissionWindowSeconds = n
		}
	}
	if v := os.Getenv("MOCKLET_LOG_QUEUE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LogQueueSize = n
		}
	}
	if v := os.Getenv("MOCKLET_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MOCKLET_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}

// Validate checks the configuration for values the server cannot run
// with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.SigningKey == "" {
		return errors.New("signingKey must not be empty")
	}
	if c.AdmissionLimit <= 0 {
		return fmt.Errorf("admissionLimit must be positive, got %d", c.AdmissionLimit)
	}
	if c.AdmissionWindowSeconds <= 0 {
		return fmt.Errorf("admissionWindowSeconds must be positive, got %d", c.AdmissionWindowSeconds)
	}
	if c.LogQueueSize <= 0 {
		return fmt.Errorf("logQueueSize must be positive, got %d", c.LogQueueSize)
	}
	return nil
}
