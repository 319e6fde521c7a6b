// Package config loads service settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all the configuration variables for a resource service.
type Config struct {
	ServerPort         string        `mapstructure:"SERVER_PORT"`
	AppEnv             string        `mapstructure:"APP_ENV"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	StorageDriver      string        `mapstructure:"STORAGE_DRIVER"`
	DatabaseURL        string        `mapstructure:"DATABASE_URL"`
	DBMaxConns         int32         `mapstructure:"DB_MAX_CONNS"`
	DBMinConns         int32         `mapstructure:"DB_MIN_CONNS"`
	DBMaxConnLifetime  time.Duration `mapstructure:"DB_MAX_CONN_LIFETIME"`
	DBMaxConnIdleTime  time.Duration `mapstructure:"DB_MAX_CONN_IDLE_TIME"`
	DBConnectAttempts  int           `mapstructure:"DB_CONNECT_ATTEMPTS"`
	RabbitMQURL        string        `mapstructure:"RABBITMQ_URL"`
	EventsExchange     string        `mapstructure:"EVENTS_EXCHANGE"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	MetricsEnabled     bool          `mapstructure:"METRICS_ENABLED"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var keys = []string{
	"SERVER_PORT",
	"APP_ENV",
	"LOG_LEVEL",
	"STORAGE_DRIVER",
	"DATABASE_URL",
	"DB_MAX_CONNS",
	"DB_MIN_CONNS",
	"DB_MAX_CONN_LIFETIME",
	"DB_MAX_CONN_IDLE_TIME",
	"DB_CONNECT_ATTEMPTS",
	"RABBITMQ_URL",
	"EVENTS_EXCHANGE",
	"CORS_ALLOWED_ORIGINS",
	"METRICS_ENABLED",
	"SHUTDOWN_TIMEOUT",
}

// LoadConfig reads configuration from environment variables.
// A .env file in path is loaded first; variables already set in the environment win.
func LoadConfig(path string) (config Config, err error) {
	envFile := strings.TrimSuffix(path, "/") + "/.env"
	if loadErr := godotenv.Load(envFile); loadErr != nil && !errors.Is(loadErr, fs.ErrNotExist) {
		return config, fmt.Errorf("load %s: %w", envFile, loadErr)
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_DRIVER", DriverPostgres)
	viper.SetDefault("DB_MAX_CONNS", 25)
	viper.SetDefault("DB_MIN_CONNS", 5)
	viper.SetDefault("DB_MAX_CONN_LIFETIME", time.Hour)
	viper.SetDefault("DB_MAX_CONN_IDLE_TIME", 30*time.Minute)
	viper.SetDefault("DB_CONNECT_ATTEMPTS", 5)
	viper.SetDefault("EVENTS_EXCHANGE", "resource_events")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("SHUTDOWN_TIMEOUT", 30*time.Second)

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	for _, key := range keys {
		_ = viper.BindEnv(key)
	}

	if err = viper.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}

	config.StorageDriver = strings.ToLower(strings.TrimSpace(config.StorageDriver))
	config.DatabaseURL = strings.TrimSpace(config.DatabaseURL)
	config.RabbitMQURL = strings.TrimSpace(config.RabbitMQURL)
	config.CORSAllowedOrigins = splitList(config.CORSAllowedOrigins)

	return config, nil
}

// Validate reports settings that cannot start a service.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.ServerPort == "" {
		return errors.New("SERVER_PORT must not be empty")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	return nil
}

// IsDevelopment reports whether APP_ENV selects development logging.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// splitList accepts both "a,b" from the environment and already split values.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
