package services

import (
	"context"

	"github.com/farellandr/resultboard/internal/apperror"
	"github.com/farellandr/resultboard/internal/models"
	"github.com/farellandr/resultboard/internal/store"
	"github.com/farellandr/resultboard/internal/validation"
)

const categoryNotFound = "Category not found"

// CategoryService handles business logic for categories
type CategoryService struct {
	provider store.Provider
}

// NewCategoryService creates a new category service
func NewCategoryService(provider store.Provider) *CategoryService {
	return &CategoryService{provider: provider}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	st, err := connect(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	categories, err := st.ListCategories(ctx)
	if err != nil {
		return nil, apperror.Persistence("Failed to retrieve categories", err)
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, in *models.CategoryInput) (*models.Category, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}

	st, err := connect(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	category := in.NewCategory()
	if err := st.CreateCategory(ctx, category); err != nil {
		return nil, apperror.Persistence("Failed to create category", err)
	}
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	st, err := connect(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	category, err := st.GetCategory(ctx, id)
	if err != nil {
		return nil, storeError(err, categoryNotFound, "Failed to retrieve category")
	}
	return category, nil
}

// Update replaces the name of the category and, when supplied, its
// description.
func (s *CategoryService) Update(ctx context.Context, id string, in *models.CategoryInput) (*models.Category, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}

	st, err := connect(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	category, err := st.GetCategory(ctx, id)
	if err != nil {
		return nil, storeError(err, categoryNotFound, "Failed to update category")
	}

	in.ApplyTo(category)
	if err := st.UpdateCategory(ctx, category); err != nil {
		return nil, storeError(err, categoryNotFound, "Failed to update category")
	}
	return category, nil
}

// Delete removes the category. Results that reference it are left as they are.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	st, err := connect(ctx, s.provider)
	if err != nil {
		return err
	}

	if err := st.DeleteCategory(ctx, id); err != nil {
		return storeError(err, categoryNotFound, "Failed to delete category")
	}
	return nil
}
