package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the service reads.
const EnvPrefix = "HEROES"

// Default values applied before any other source.
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultSuperheroBaseURL = "https://superheroapi.com/api"
)

// envBindings maps configuration keys to the environment variables that can
// set them, in order of precedence.
var envBindings = map[string][]string{
	"server.port":           {"HEROES_SERVER_PORT"},
	"server.log_level":      {"HEROES_SERVER_LOG_LEVEL"},
	"server.log_file":       {"HEROES_SERVER_LOG_FILE"},
	"database.url":          {"HEROES_DATABASE_URL"},
	"database.auto_migrate": {"HEROES_DATABASE_AUTO_MIGRATE"},
	"superhero.base_url":    {"HEROES_SUPERHERO_BASE_URL"},
	"superhero.api_token":   {"HEROES_SUPERHERO_API_TOKEN", "SUPERHERO_API_TOKEN"},
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// A .env file in the working directory is loaded first; it never overrides
// variables already present in the environment.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.log_file", "")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("superhero.base_url", DefaultSuperheroBaseURL)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envBindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
