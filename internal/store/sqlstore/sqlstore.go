// Package sqlstore persists categories and results through gorm, on
// PostgreSQL in production and SQLite for local runs and tests.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/farellandr/resultboard/internal/metrics"
	"github.com/farellandr/resultboard/internal/models"
	"github.com/farellandr/resultboard/internal/store"
)

const backend = "sql"

type Option func(*Store)

// WithClock overrides the time source used for createdAt and updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

type Store struct {
	db  *gorm.DB
	now func() time.Time
}

var _ store.Store = (*Store)(nil)

// Dialector picks the gorm driver for a connection URL.
func Dialector(dsn string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://")), nil
	case strings.HasPrefix(dsn, "file:"):
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported sql database url %q", redact(dsn))
	}
}

// Open connects, verifies the connection and migrates the schema.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	dialector, err := Dialector(dsn)
	if err != nil {
		return nil, err
	}

	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc:                                  func() time.Time { return s.now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db

	if err := s.Ping(ctx); err != nil {
		_ = s.Close(ctx)
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		_ = s.Close(ctx)
		return nil, err
	}
	return s, nil
}

func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Category{}, &models.Result{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	defer metrics.ObserveStore(backend, "list_categories", time.Now())

	categories := []models.Category{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	defer metrics.ObserveStore(backend, "create_category", time.Now())

	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (s *Store) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	defer metrics.ObserveStore(backend, "get_category", time.Now())

	var category models.Category
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, notFound(err, "failed to get category")
	}
	return &category, nil
}

func (s *Store) UpdateCategory(ctx context.Context, category *models.Category) error {
	defer metrics.ObserveStore(backend, "update_category", time.Now())

	category.UpdatedAt = s.now().UTC()
	res := s.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", category.ID).
		Select("name", "description", "updated_at").
		Updates(category)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	defer metrics.ObserveStore(backend, "delete_category", time.Now())

	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) FindCategoriesByIDs(ctx context.Context, ids []string) (map[string]*models.Category, error) {
	defer metrics.ObserveStore(backend, "find_categories", time.Now())

	found := make(map[string]*models.Category)
	ids = store.UniqueIDs(ids)
	if len(ids) == 0 {
		return found, nil
	}

	var categories []models.Category
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	for i := range categories {
		found[categories[i].ID] = &categories[i]
	}
	return found, nil
}

func (s *Store) ListResults(ctx context.Context) ([]models.Result, error) {
	defer metrics.ObserveStore(backend, "list_results", time.Now())

	results := []models.Result{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

func (s *Store) CreateResult(ctx context.Context, result *models.Result) error {
	defer metrics.ObserveStore(backend, "create_result", time.Now())

	if err := s.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}
	return nil
}

func (s *Store) GetResult(ctx context.Context, id string) (*models.Result, error) {
	defer metrics.ObserveStore(backend, "get_result", time.Now())

	var result models.Result
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&result).Error; err != nil {
		return nil, notFound(err, "failed to get result")
	}
	return &result, nil
}

func (s *Store) UpdateResult(ctx context.Context, result *models.Result) error {
	defer metrics.ObserveStore(backend, "update_result", time.Now())

	result.UpdatedAt = s.now().UTC()
	res := s.db.WithContext(ctx).
		Model(&models.Result{}).
		Where("id = ?", result.ID).
		Select("category_id", "event_name", "event_date", "individual_podium", "group_podium", "updated_at").
		Updates(result)
	if res.Error != nil {
		return fmt.Errorf("failed to update result: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteResult(ctx context.Context, id string) error {
	defer metrics.ObserveStore(backend, "delete_result", time.Now())

	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Result{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete result: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func redact(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "…"
	}
	return dsn
}
