package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	StorageDriver string `validate:"oneof=memory sqlite postgres"`
	SQLitePath    string `validate:"required_if=StorageDriver sqlite"`

	DBUser        string
	DBPassword    string
	DBHost        string `validate:"required_if=StorageDriver postgres"`
	DBPort        string
	DBName        string `validate:"required_if=StorageDriver postgres"`
	DBMaxConns    int    `validate:"min=1"`
	DBMaxIdleTime time.Duration
	DBMaxLifetime time.Duration

	Timezone      string
	SweepInterval time.Duration `validate:"min=1s"`
	RulesPath     string
	CatalogPath   string

	DeadLetterPath      string
	DiscordWebhookID    string
	DiscordWebhookToken string `validate:"required_with=DiscordWebhookID"`

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine; real env vars may be set instead
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", ""),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),

		StorageDriver: getEnv("STORAGE_DRIVER", DefaultStorageDriver),
		SQLitePath:    getEnv("SQLITE_PATH", DefaultSQLitePath),

		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "ascendant"),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdleTime: getEnvAsDuration("DB_MAX_IDLE_TIME", DefaultDBMaxIdleTime),
		DBMaxLifetime: getEnvAsDuration("DB_MAX_LIFETIME", DefaultDBMaxLifetime),

		Timezone:      getEnv("TIMEZONE", DefaultTimezone),
		SweepInterval: getEnvAsDuration("SWEEP_INTERVAL", DefaultSweepInterval),
		RulesPath:     getEnv("RULES_PATH", DefaultRulesPath),
		CatalogPath:   getEnv("CATALOG_PATH", ""),

		DeadLetterPath:      getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		DiscordWebhookID:    getEnv("DISCORD_WEBHOOK_ID", ""),
		DiscordWebhookToken: getEnv("DISCORD_WEBHOOK_TOKEN", ""),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownWait),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags and the timezone name
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone; "Local" and "" mean the host zone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgInvalidTimezone, c.Timezone, err)
	}
	return loc, nil
}

// DiscordEnabled reports whether webhook credentials are configured
func (c *Config) DiscordEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration retrieves a duration environment variable or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
