// Package config loads runtime settings from the environment.
//
// Variables use the RESTAPP_ prefix and "__" between nesting levels, so
// RESTAPP_SERVER__PORT sets server.port and RESTAPP_DATABASE__URL sets
// database.url. A .env file in the working directory is loaded first when
// present. Anything not set keeps the value from Default.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "RESTAPP_"

type Config struct {
	ServiceName string         `koanf:"service_name" validate:"required"`
	Server      ServerConfig   `koanf:"server"`
	Storage     StorageConfig  `koanf:"storage"`
	Database    DatabaseConfig `koanf:"database"`
	Events      EventsConfig   `koanf:"events"`
	Log         LogConfig      `koanf:"log"`
	Seed        SeedConfig     `koanf:"seed"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port            string          `koanf:"port" validate:"required"`
	ReadTimeout     int             `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout    int             `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout     int             `koanf:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout int             `koanf:"shutdown_timeout" validate:"gte=0"`
	RateLimit       RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig applies per client IP. RPS 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `koanf:"rps" validate:"gte=0"`
	Burst int     `koanf:"burst" validate:"gte=0"`
}

type StorageConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=memory postgres"`
}

// DatabaseConfig is only read when storage.driver is postgres.
// ConnMaxLifetime is in seconds.
type DatabaseConfig struct {
	URL             string `koanf:"url" validate:"required_if=Driver postgres"`
	Driver          string `koanf:"-"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"gte=0"`
}

type EventsConfig struct {
	Driver  string `koanf:"driver" validate:"required,oneof=none memory amqp"`
	AMQPURL string `koanf:"amqp_url" validate:"required_if=Driver amqp"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

type SeedConfig struct {
	Enabled bool `koanf:"enabled"`
}

// Default returns the settings used for anything the environment leaves unset:
// an in-memory store, no event broker, port 8080.
func Default() *Config {
	return &Config{
		ServiceName: "mvc-rest-api",
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			RateLimit:       RateLimitConfig{RPS: 0, Burst: 20},
		},
		Storage: StorageConfig{Driver: "memory"},
		Database: DatabaseConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Events: EventsConfig{Driver: "none"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the process environment on top of Default and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Database.Driver = cfg.Storage.Driver

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks required fields and enumerations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
