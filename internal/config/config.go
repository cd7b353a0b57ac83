// Package config loads the codex CLI configuration from a JSON file and
// the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the codex CLI tool configuration
type Configuration struct {
	ContentDir      string `koanf:"content_dir" validate:"required"`
	RedisAddress    string `koanf:"redis_address" validate:"required,hostname_port"`
	RedisPoolSize   int    `koanf:"redis_pool_size" validate:"omitempty,min=1,max=1000"`
	RedisTimeoutSec int    `koanf:"redis_timeout_sec" validate:"omitempty,min=1,max=600"`
	Strict          bool   `koanf:"strict"` // Treat warnings as failures when linting
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"content_dir":       "content",
		"redis_address":     "localhost:6379",
		"redis_pool_size":   10,
		"redis_timeout_sec": 30,
		"strict":            false,
	}
}

// Load loads configuration from a config file and environment sources
// Priority: Environment variables > Config file > Defaults
func Load(configPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// Environment variables win (highest priority)
	if err := k.Load(env.Provider("CODEX_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// RedisTimeout returns the configured Redis timeout as a duration
func (c *Configuration) RedisTimeout() time.Duration {
	return time.Duration(c.RedisTimeoutSec) * time.Second
}

// envTransform converts environment variable names to config keys
// Example: CODEX_REDIS_ADDRESS -> redis_address
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CODEX_"))
}
