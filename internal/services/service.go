package services

import (
	"context"
	"errors"

	"github.com/farellandr/resultboard/internal/apperror"
	"github.com/farellandr/resultboard/internal/store"
)

func connect(ctx context.Context, provider store.Provider) (store.Store, error) {
	st, err := provider.Store(ctx)
	if err != nil {
		return nil, apperror.Persistence("Database connection failed", err)
	}
	return st, nil
}

// storeError maps store.ErrNotFound to a NotFound error and anything else to
// a persistence failure.
func storeError(err error, notFound, failed string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NotFound(notFound)
	}
	return apperror.Persistence(failed, err)
}
