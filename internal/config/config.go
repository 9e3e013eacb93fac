package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"questgen/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig   `validate:"required"`
	Data      DataConfig     `validate:"required"`
	Database  DatabaseConfig
	Generator GeneratorConfig
	History   HistoryConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string `validate:"required"`
	GinMode         string
	ShutdownTimeout time.Duration
}

// DataConfig holds the data directory layout. The two workbook files live
// under DataDir; when neither exists the built-in bank is used instead.
type DataConfig struct {
	DataDir          string
	ContextBankFile  string
	MasterSourceFile string
}

// DatabaseConfig holds optional history persistence settings. An empty URL
// means history is kept in memory only.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// GeneratorConfig holds question generation tunables
type GeneratorConfig struct {
	DefaultLevel      string
	DefaultDifficulty int
	MaxQuestions      int
	BuildConcurrency  int64
	ShareCodeSalt     string
}

// HistoryConfig holds generation history settings
type HistoryConfig struct {
	Limit int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    loadServerConfig(),
		Data:      loadDataConfig(),
		Database:  loadDatabaseConfig(),
		Generator: loadGeneratorConfig(),
		History:   loadHistoryConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            getEnvOrDefault("PORT", "8080"),
		GinMode:         getEnvOrDefault("GIN_MODE", "debug"),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadDataConfig() DataConfig {
	return DataConfig{
		DataDir:          getEnvOrDefault("DATA_DIR", "data"),
		ContextBankFile:  getEnvOrDefault("CONTEXT_BANK_FILE", "ContextBanks.xlsx"),
		MasterSourceFile: getEnvOrDefault("MASTER_SOURCE_FILE", "WorksheetMergeMasterSourceFile.xlsx"),
	}
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL:     getEnvOrDefault("DATABASE_URL", ""),
		SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
	}
}

func loadGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		DefaultLevel:      getEnvOrDefault("DEFAULT_LEVEL", "standard"),
		DefaultDifficulty: getEnvIntOrDefault("DEFAULT_DIFFICULTY", 2),
		MaxQuestions:      getEnvIntOrDefault("MAX_QUESTIONS", 50),
		BuildConcurrency:  int64(getEnvIntOrDefault("BUILD_CONCURRENCY", 4)),
		ShareCodeSalt:     getEnvOrDefault("SHARE_CODE_SALT", "questgen"),
	}
}

func loadHistoryConfig() HistoryConfig {
	return HistoryConfig{
		Limit: getEnvIntOrDefault("HISTORY_LIMIT", 100),
	}
}

// ContextBankPath returns the resolved path of the context bank workbook
func (c *Config) ContextBankPath() string {
	return filepath.Join(c.Data.DataDir, c.Data.ContextBankFile)
}

// MasterSourcePath returns the resolved path of the master source workbook
func (c *Config) MasterSourcePath() string {
	return filepath.Join(c.Data.DataDir, c.Data.MasterSourceFile)
}

// HasDatabase reports whether history persistence is configured
func (c *Config) HasDatabase() bool {
	return c.Database.URL != ""
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Data.DataDir == "" {
		return errors.ConfigInvalid("data directory is required")
	}
	if config.Generator.DefaultDifficulty < 1 || config.Generator.DefaultDifficulty > 5 {
		return errors.ConfigInvalid("DEFAULT_DIFFICULTY must be between 1 and 5")
	}
	switch config.Generator.DefaultLevel {
	case "minimal", "standard", "rich":
	default:
		return errors.ConfigInvalid("DEFAULT_LEVEL must be minimal, standard or rich")
	}
	if config.Generator.BuildConcurrency < 1 {
		return errors.ConfigInvalid("BUILD_CONCURRENCY must be at least 1")
	}
	if config.History.Limit < 1 {
		return errors.ConfigInvalid("HISTORY_LIMIT must be at least 1")
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

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
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
