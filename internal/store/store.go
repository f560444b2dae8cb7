// Package store defines the persistence contract shared by the SQL and
// MongoDB backends.
package store

import (
	"context"
	"errors"

	"github.com/farellandr/resultboard/internal/models"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("record not found")

type CategoryStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id string) error
	// FindCategoriesByIDs returns the categories that exist among ids, keyed
	// by id. Missing ids are simply absent from the map.
	FindCategoriesByIDs(ctx context.Context, ids []string) (map[string]*models.Category, error)
}

type ResultStore interface {
	// ListResults returns every result, newest first.
	ListResults(ctx context.Context) ([]models.Result, error)
	CreateResult(ctx context.Context, result *models.Result) error
	GetResult(ctx context.Context, id string) (*models.Result, error)
	UpdateResult(ctx context.Context, result *models.Result) error
	DeleteResult(ctx context.Context, id string) error
}

// Store is a connected backend.
type Store interface {
	CategoryStore
	ResultStore
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Provider hands out the process-wide store, dialling it on first use.
type Provider interface {
	Store(ctx context.Context) (Store, error)
	State() string
}

// UniqueIDs returns ids without duplicates or empty entries, in first-seen order.
func UniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Static returns a Provider that always hands out s.
func Static(s Store) Provider {
	return staticProvider{s}
}

type staticProvider struct {
	s Store
}

func (p staticProvider) Store(context.Context) (Store, error) { return p.s, nil }

func (p staticProvider) State() string { return "connected" }
