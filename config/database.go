package config

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/farellandr/resultboard/internal/database"
	"github.com/farellandr/resultboard/internal/store"
	"github.com/farellandr/resultboard/internal/store/mongostore"
	"github.com/farellandr/resultboard/internal/store/sqlstore"
)

// Dialer picks the store backend from the scheme of the database URL.
func Dialer(cfg *Config) (database.Dialer, error) {
	url := cfg.DatabaseURL
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return func(ctx context.Context) (store.Store, error) {
			return mongostore.Open(ctx, url, cfg.DatabaseName)
		}, nil
	default:
		if _, err := sqlstore.Dialector(url); err != nil {
			return nil, err
		}
		return func(ctx context.Context) (store.Store, error) {
			return sqlstore.Open(ctx, url)
		}, nil
	}
}

// InitDatabase returns the lazily connected store handle. Nothing is dialled
// until the first request needs the store.
func InitDatabase(cfg *Config, log *zap.Logger) (*database.Handle, error) {
	dial, err := Dialer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}
	return database.NewHandle(dial, database.WithLogger(log)), nil
}
