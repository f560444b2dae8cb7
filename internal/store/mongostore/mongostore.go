// Package mongostore persists categories and results in MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/farellandr/resultboard/internal/metrics"
	"github.com/farellandr/resultboard/internal/models"
	"github.com/farellandr/resultboard/internal/store"
)

const (
	backend = "mongo"

	categoriesCollection = "categories"
	resultsCollection    = "results"
)

type Option func(*Store)

// WithClock overrides the time source used for createdAt and updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

type Store struct {
	client     *mongo.Client
	categories *mongo.Collection
	results    *mongo.Collection
	now        func() time.Time
}

var _ store.Store = (*Store)(nil)

// Open connects to uri, verifies the connection with a ping and ensures the
// collection indexes exist.
func Open(ctx context.Context, uri, database string, opts ...Option) (*Store, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(10 * time.Second).
		SetSocketTimeout(45 * time.Second).
		SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	db := client.Database(database)
	s := &Store{
		client:     client,
		categories: db.Collection(categoriesCollection),
		results:    db.Collection(resultsCollection),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	if err := s.Migrate(ctx); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}
	return s, nil
}

// Migrate creates the indexes the list queries rely on.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create category indexes: %w", err)
	}

	_, err = s.results.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create result indexes: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// timestamp is the current time at the precision MongoDB stores.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	defer metrics.ObserveStore(backend, "list_categories", time.Now())

	cursor, err := s.categories.Find(ctx, bson.D{}, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	defer metrics.ObserveStore(backend, "create_category", time.Now())

	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	category.CreatedAt = s.timestamp()
	category.UpdatedAt = category.CreatedAt

	if _, err := s.categories.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (s *Store) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	defer metrics.ObserveStore(backend, "get_category", time.Now())

	var category models.Category
	if err := s.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		return nil, notFound(err, "failed to get category")
	}
	return &category, nil
}

func (s *Store) UpdateCategory(ctx context.Context, category *models.Category) error {
	defer metrics.ObserveStore(backend, "update_category", time.Now())

	category.UpdatedAt = s.timestamp()
	res, err := s.categories.UpdateOne(ctx, bson.M{"_id": category.ID}, bson.M{"$set": bson.M{
		"name":        category.Name,
		"description": category.Description,
		"updatedAt":   category.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	defer metrics.ObserveStore(backend, "delete_category", time.Now())

	res, err := s.categories.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if res.DeletedCount == 0 {
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

	cursor, err := s.categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	for i := range categories {
		found[categories[i].ID] = &categories[i]
	}
	return found, nil
}

func (s *Store) ListResults(ctx context.Context) ([]models.Result, error) {
	defer metrics.ObserveStore(backend, "list_results", time.Now())

	cursor, err := s.results.Find(ctx, bson.D{}, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	results := []models.Result{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	return results, nil
}

func (s *Store) CreateResult(ctx context.Context, result *models.Result) error {
	defer metrics.ObserveStore(backend, "create_result", time.Now())

	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	result.EventDate = result.EventDate.UTC().Truncate(time.Millisecond)
	result.CreatedAt = s.timestamp()
	result.UpdatedAt = result.CreatedAt

	if _, err := s.results.InsertOne(ctx, result); err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}
	return nil
}

func (s *Store) GetResult(ctx context.Context, id string) (*models.Result, error) {
	defer metrics.ObserveStore(backend, "get_result", time.Now())

	var result models.Result
	if err := s.results.FindOne(ctx, bson.M{"_id": id}).Decode(&result); err != nil {
		return nil, notFound(err, "failed to get result")
	}
	return &result, nil
}

func (s *Store) UpdateResult(ctx context.Context, result *models.Result) error {
	defer metrics.ObserveStore(backend, "update_result", time.Now())

	result.EventDate = result.EventDate.UTC().Truncate(time.Millisecond)
	result.UpdatedAt = s.timestamp()
	res, err := s.results.UpdateOne(ctx, bson.M{"_id": result.ID}, bson.M{"$set": bson.M{
		"category":   result.CategoryID,
		"eventName":  result.EventName,
		"eventDate":  result.EventDate,
		"individual": result.Individual,
		"group":      result.Group,
		"updatedAt":  result.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("failed to update result: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteResult(ctx context.Context, id string) error {
	defer metrics.ObserveStore(backend, "delete_result", time.Now())

	res, err := s.results.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
