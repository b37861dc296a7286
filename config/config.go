// Package config reads the shell configuration from the environment.
package config

import (
	"fmt"
	"time"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
	DriverRedis  = "redis"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	APIBaseURL string
	APITimeout time.Duration

	TaxRate      float64
	SessionTTL   time.Duration
	PollInterval time.Duration

	StorageDriver string
	DBDSN         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORSOrigin    string
	PublicBaseURL string
	DeviceCookie  string
	SecureCookies bool
	DeviceIdleTTL time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnvAsString("PORT", "8080"),
		GinMode:  getEnvAsString("GIN_MODE", "debug"),
		LogLevel: getEnvAsString("LOG_LEVEL", "info"),

		APIBaseURL: getEnvAsString("API_BASE_URL", "http://localhost:8081/api"),
		APITimeout: getEnvAsDuration("API_TIMEOUT", 10*time.Second),

		TaxRate:      getEnvAsFloat("TAX_RATE", 0.08),
		SessionTTL:   getEnvAsDuration("SESSION_TTL", 2*time.Hour),
		PollInterval: getEnvAsDuration("POLL_INTERVAL", 30*time.Second),

		StorageDriver: getEnvAsString("STORAGE_DRIVER", DriverSQLite),
		DBDSN:         getEnvAsString("DB_DSN", "device_state.db"),
		RedisAddr:     getEnvAsString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvAsString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		CORSOrigin:    getEnvAsString("CORS_ORIGIN", "http://localhost:3000"),
		PublicBaseURL: getEnvAsString("PUBLIC_BASE_URL", "http://localhost:8080"),
		DeviceCookie:  getEnvAsString("DEVICE_COOKIE", "device_id"),
		SecureCookies: getEnvAsBool("SECURE_COOKIES", false),
		DeviceIdleTTL: getEnvAsDuration("DEVICE_IDLE_TTL", 30*time.Minute),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverMemory, DriverSQLite, DriverMySQL, DriverRedis:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.TaxRate < 0 {
		return fmt.Errorf("TAX_RATE must not be negative, got %v", c.TaxRate)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive, got %v", c.PollInterval)
	}
	if c.DeviceIdleTTL <= 0 {
		return fmt.Errorf("DEVICE_IDLE_TTL must be positive, got %v", c.DeviceIdleTTL)
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
