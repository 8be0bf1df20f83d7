package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"launchdash/internal/errors"
)

// Data source kinds
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Data      DataConfig
	UI        UIConfig
	Logging   LoggingConfig
	Profiling ProfilingConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL   string
	Table string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

// DataConfig selects where launch records come from
type DataConfig struct {
	Source string
	File   string
	Sheet  string
}

// UIConfig holds dashboard presentation settings
type UIConfig struct {
	Title       string
	PayloadStep float64
	NotesFile   string
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string
	Format string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database:  *loadDatabaseConfig(),
		Server:    *loadServerConfig(),
		Data:      *loadDataConfig(),
		UI:        *loadUIConfig(),
		Logging:   *loadLoggingConfig(),
		Profiling: *loadProfilingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URL:   os.Getenv("DATABASE_URL"),
		Table: getEnvOrDefault("DATABASE_TABLE", "launches"),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "8050"),
		GinMode:         getEnvOrDefault("GIN_MODE", "release"),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		Source: strings.ToLower(getEnvOrDefault("DATA_SOURCE", SourceFile)),
		File:   getEnvOrDefault("DATA_FILE", "spacex_launch_dash.csv"),
		Sheet:  getEnvOrDefault("DATA_SHEET", "Sheet1"),
	}
}

func loadUIConfig() *UIConfig {
	return &UIConfig{
		Title:       getEnvOrDefault("DASHBOARD_TITLE", "SpaceX Launch Records Dashboard"),
		PayloadStep: getEnvFloatOrDefault("PAYLOAD_STEP", 1000),
		NotesFile:   os.Getenv("NOTES_FILE"),
	}
}

func loadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:  getEnvOrDefault("LOG_LEVEL", "INFO"),
		Format: getEnvOrDefault("LOG_FORMAT", "json"),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	switch config.Data.Source {
	case SourceFile:
		if config.Data.File == "" {
			return errors.ConfigInvalid("DATA_FILE is required when DATA_SOURCE=file")
		}
	case SourcePostgres:
		if config.Database.URL == "" {
			return errors.ConfigInvalid("DATABASE_URL is required when DATA_SOURCE=postgres")
		}
	default:
		return errors.ConfigInvalid("DATA_SOURCE must be file or postgres, got " + config.Data.Source)
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	if config.UI.PayloadStep <= 0 {
		return errors.ConfigInvalid("PAYLOAD_STEP must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
