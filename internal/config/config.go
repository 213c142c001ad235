package config

import (
	"fmt"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	StoreDriverRedis  = "redis"
	StoreDriverBadger = "badger"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App    AppConfig
	Log    LogConfig
	Store  StoreConfig
	Redis  RedisConfig
	Badger BadgerConfig
	Auth   AuthConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type LogConfig struct {
	Level string // zerolog level name
}

type StoreConfig struct {
	Driver string // redis, badger
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type BadgerConfig struct {
	Path string
}

type AuthConfig struct {
	// AdminSecret is compared verbatim against the X-Admin-Password header.
	AdminSecret string
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Book Listing API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", StoreDriverRedis),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Badger: BadgerConfig{
			Path: getEnv("BADGER_PATH", "./data/listings"),
		},
		Auth: AuthConfig{
			AdminSecret: os.Getenv("ADMIN_SECRET"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Environment, validation.In("development", "staging", "production")),
		validation.Field(&c.App.Port, validation.Required),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if err := validation.ValidateStruct(&c.Store,
		validation.Field(&c.Store.Driver, validation.In(StoreDriverRedis, StoreDriverBadger)),
	); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	switch c.Store.Driver {
	case StoreDriverRedis:
		if err := validation.Validate(c.Redis.Host, validation.Required); err != nil {
			return fmt.Errorf("REDIS_HOST: %w", err)
		}
	case StoreDriverBadger:
		if err := validation.Validate(c.Badger.Path, validation.Required); err != nil {
			return fmt.Errorf("BADGER_PATH: %w", err)
		}
	}

	if err := validation.Validate(c.Auth.AdminSecret, validation.Required); err != nil {
		return fmt.Errorf("ADMIN_SECRET: %w", err)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
