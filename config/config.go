package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	KeyDatabaseURL   = "database_url"
	KeyMongoURI      = "mongodb_uri"
	KeyDatabaseName  = "database_name"
	KeyPort          = "port"
	KeyEnvironment   = "environment"
	KeyCORSOrigins   = "cors_origins"
	KeyPublicBaseURL = "public_base_url"
	KeyLogLevel      = "log_level"

	EnvironmentDevelopment = "development"
)

var defaultCORSOrigins = []string{
	"https://resultapp.vercel.app",
	"http://localhost:3000",
	"http://localhost:5173",
}

var ErrMissingDatabaseURL = errors.New("DATABASE_URL (or MONGODB_URI) is not set")

type Config struct {
	DatabaseURL   string
	DatabaseName  string
	Port          string
	Environment   string
	CORSOrigins   []string
	PublicBaseURL string
	LogLevel      string
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}

// NewViper returns a viper instance bound to the environment with every
// default set. A .env file in the working directory is loaded first when
// present; variables already in the environment win.
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(KeyDatabaseName, "results")
	v.SetDefault(KeyPort, "5000")
	v.SetDefault(KeyEnvironment, EnvironmentDevelopment)
	v.SetDefault(KeyCORSOrigins, strings.Join(defaultCORSOrigins, ","))
	v.SetDefault(KeyPublicBaseURL, "")
	v.SetDefault(KeyLogLevel, "info")
	return v
}

// LoadConfig reads the configuration from v. It fails when no database URL
// is configured.
func LoadConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:   strings.TrimSpace(v.GetString(KeyDatabaseURL)),
		DatabaseName:  v.GetString(KeyDatabaseName),
		Port:          v.GetString(KeyPort),
		Environment:   strings.ToLower(strings.TrimSpace(v.GetString(KeyEnvironment))),
		CORSOrigins:   splitList(v.GetString(KeyCORSOrigins)),
		PublicBaseURL: strings.TrimSpace(v.GetString(KeyPublicBaseURL)),
		LogLevel:      v.GetString(KeyLogLevel),
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = strings.TrimSpace(v.GetString(KeyMongoURI))
	}
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// NewLogger builds a development logger in development and a JSON production
// logger otherwise, at the configured level.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
