package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

var shippedConfig = filepath.Join("..", "..", DefaultPath)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logger.Level
	}{
		{"debug", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warn", logger.WarnLevel},
		{"error", logger.ErrorLevel},
		{"", logger.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, LoggerConfig{Level: tt.level}.LogLevel())
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "app",
		Password: "secret",
		Database: "seatreserve",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=app password=secret dbname=seatreserve sslmode=disable", p.DSN())
}

func TestLoadPath_ShippedConfig(t *testing.T) {
	var cfg Config
	require.NoError(t, cleanenvport.LoadPath(shippedConfig, &cfg))

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.Interval)
	assert.Equal(t, 5*time.Second, cfg.Booking.CompensationTimeout)
	assert.GreaterOrEqual(t, len(cfg.Auth.JWTSecret), 16)
	assert.GreaterOrEqual(t, len(cfg.Ticket.Secret), 16)
	assert.Empty(t, cfg.Auth.BootstrapAdmins)
}

func TestLoadPath_EnvOverridesFile(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", StoragePostgres)
	t.Setenv("AUTH_BOOTSTRAP_ADMINS", "a,b")

	var cfg Config
	require.NoError(t, cleanenvport.LoadPath(shippedConfig, &cfg))

	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, []string{"a", "b"}, cfg.Auth.BootstrapAdmins)
}

func TestLoadPath_MissingSecret(t *testing.T) {
	raw, err := os.ReadFile(shippedConfig)
	require.NoError(t, err)

	trimmed := strings.Replace(string(raw), "  secret: dev-only-ticket-secret-change-me\n", "", 1)
	require.NotEqual(t, string(raw), trimmed)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(trimmed), 0o600))

	var cfg Config
	err = cleanenvport.LoadPath(path, &cfg)

	assert.ErrorIs(t, err, cleanenvport.ErrConfigValidation)
}
