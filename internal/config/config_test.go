package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	for _, key := range keys {
		unsetEnvWithCleanup(t, key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.Equal(t, int32(5), cfg.DBMinConns)
	assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
	assert.Equal(t, 5, cfg.DBConnectAttempts)
	assert.Equal(t, "resource_events", cfg.EventsExchange)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	resetViper(t)

	setEnvWithCleanup(t, "STORAGE_DRIVER", " Memory ")
	setEnvWithCleanup(t, "DB_MAX_CONNS", "40")
	setEnvWithCleanup(t, "SHUTDOWN_TIMEOUT", "5s")
	setEnvWithCleanup(t, "CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test")
	setEnvWithCleanup(t, "METRICS_ENABLED", "false")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, int32(40), cfg.DBMaxConns)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	resetViper(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9191\nLOG_LEVEL=debug\n"), 0o600))
	setEnvWithCleanup(t, "LOG_LEVEL", "warn")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.ServerPort)
	assert.Equal(t, "warn", cfg.LogLevel, "environment wins over .env")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"postgres without url", Config{ServerPort: "8080", StorageDriver: DriverPostgres}, true},
		{"postgres with url", Config{ServerPort: "8080", StorageDriver: DriverPostgres, DatabaseURL: "postgres://x", DBMaxConns: 5, DBMinConns: 1}, false},
		{"memory", Config{ServerPort: "8080", StorageDriver: DriverMemory}, false},
		{"unknown driver", Config{ServerPort: "8080", StorageDriver: "mysql"}, true},
		{"min above max", Config{ServerPort: "8080", StorageDriver: DriverMemory, DBMaxConns: 1, DBMinConns: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func setEnvWithCleanup(t *testing.T, key string, value string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	require.NoError(t, os.Setenv(key, value))
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func unsetEnvWithCleanup(t *testing.T, key string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}
