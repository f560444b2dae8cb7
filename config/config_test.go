package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://results.db")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "sqlite://results.db", cfg.DatabaseURL)
	assert.Equal(t, "results", cfg.DatabaseName)
	assert.Equal(t, "5000", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, defaultCORSOrigins, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := LoadConfig(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGODB_URI", "")

	_, err := LoadConfig(NewViper())
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestDialer(t *testing.T) {
	for _, url := range []string{
		"mongodb://localhost:27017",
		"mongodb+srv://cluster.example.net",
		"postgres://localhost/results",
		"sqlite://results.db",
	} {
		dial, err := Dialer(&Config{DatabaseURL: url, DatabaseName: "results"})
		assert.NoError(t, err, url)
		assert.NotNil(t, dial, url)
	}

	_, err := Dialer(&Config{DatabaseURL: "redis://localhost"})
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(&Config{Environment: "production", LogLevel: "warn"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger(&Config{LogLevel: "loud"})
	assert.Error(t, err)
}
