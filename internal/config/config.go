// Package config loads the server configuration from a YAML file.
package config

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`

	// Redis enables the Redis-backed session store and distributed locks.
	// When nil, sessions live in process memory.
	Redis *RedisConfig `yaml:"redis"`

	// Encryption enables at-rest encryption of transfer details.
	Encryption *EncryptionConfig `yaml:"encryption"`
}

// RedisConfig connects the session store to a Redis instance.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	// SessionTTL expires idle sessions. Zero keeps them forever.
	SessionTTL Duration `yaml:"sessionTTL"`
}

// Duration parses YAML strings like "30m" or "1h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// EncryptionConfig carries base64-encoded AES-256 keys.
type EncryptionConfig struct {
	// ActiveKey encrypts new writes. Must decode to 32 bytes.
	ActiveKey string `yaml:"activeKey"`

	// FallbackKeys are tried on reads during key rotation.
	FallbackKeys []string `yaml:"fallbackKeys"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Addr:     ":8080",
		LogLevel: "info",
	}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	if cfg.Encryption != nil {
		if _, _, err := cfg.Encryption.Keys(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Level parses the configured log level.
func (c *Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

// Keys decodes the active and fallback keys.
func (e *EncryptionConfig) Keys() (active []byte, fallbacks [][]byte, err error) {
	active, err = decodeKey(e.ActiveKey)
	if err != nil {
		return nil, nil, fmt.Errorf("active key: %w", err)
	}
	for i, raw := range e.FallbackKeys {
		key, err := decodeKey(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("fallback key %d: %w", i, err)
		}
		fallbacks = append(fallbacks, key)
	}
	return active, fallbacks, nil
}

func decodeKey(raw string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("key is %d bytes, want 32", len(key))
	}
	return key, nil
}
