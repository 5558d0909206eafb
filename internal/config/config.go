package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"milxos/internal/store"
)

// Config holds the settings for `milxos serve`.
type Config struct {
	Server ServerConfig
	Prefs  PrefsConfig
	Redis  RedisConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

type PrefsConfig struct {
	Backend store.Backend
	Dir     string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	backend, err := store.ParseBackend(getEnv("MILXOS_PREFS_BACKEND", string(store.BackendFile)))
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("MILXOS_HOST", "127.0.0.1"),
			Port:            getEnvAsInt("MILXOS_PORT", 8080),
			ShutdownTimeout: getEnvAsDuration("MILXOS_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Prefs: PrefsConfig{
			Backend: backend,
			Dir:     getEnv(store.EnvConfigDir, ""),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout: %s", c.Server.ShutdownTimeout)
	}
	if c.Prefs.Backend == store.BackendRedis && c.Redis.Address == "" {
		return fmt.Errorf("redis address is required for the redis prefs backend")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// StoreOptions maps the config onto store.Open options.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Dir: c.Prefs.Dir,
		Redis: store.RedisOptions{
			Address:  c.Redis.Address,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		},
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
