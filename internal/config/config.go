package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"library-backend/internal/infrastructure/database"
)

// Config holds the application configuration, populated from environment
// variables (a .env file is loaded by main in development).
type Config struct {
	App AppConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// Load reads the application section from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "library-backend"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	switch cfg.App.Environment {
	case "development", "staging", "production":
	default:
		return nil, fmt.Errorf("invalid APP_ENV %q", cfg.App.Environment)
	}

	return cfg, nil
}

// LoadDatabaseConfig reads the PostgreSQL section from the environment.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	port, err := getEnvInt("PG_PORT", 5432)
	if err != nil {
		return nil, err
	}
	maxConns, err := getEnvInt("PG_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}
	minConns, err := getEnvInt("PG_MIN_CONNS", 2)
	if err != nil {
		return nil, err
	}
	maxRetries, err := getEnvInt("PG_MAX_RETRIES", 3)
	if err != nil {
		return nil, err
	}

	return &database.DBConfig{
		Host:     getEnv("PG_HOST", "localhost"),
		Port:     port,
		Username: getEnv("PG_USERNAME", "postgres"),
		Password: getEnv("PG_PASSWORD", "postgres"),
		DBName:   getEnv("PG_DBNAME", "library"),

		MaxConns:          int32(maxConns),
		MinConns:          int32(minConns),
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,

		MaxRetries:     maxRetries,
		RetryDelay:     time.Second,
		ConnectTimeout: 5 * time.Second,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return parsed, nil
}
