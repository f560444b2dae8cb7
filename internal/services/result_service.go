package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/farellandr/resultboard/internal/apperror"
	"github.com/farellandr/resultboard/internal/metrics"
	"github.com/farellandr/resultboard/internal/models"
	"github.com/farellandr/resultboard/internal/store"
	"github.com/farellandr/resultboard/internal/validation"
)

const resultNotFound = "Result not found"

// Renderer turns a resolved result into a PDF document.
type Renderer interface {
	Render(ctx context.Context, result *models.Result) ([]byte, error)
}

// ResultService handles business logic for results
type ResultService struct {
	provider store.Provider
	renderer Renderer
	log      *zap.Logger
}

// NewResultService creates a new result service
func NewResultService(provider store.Provider, renderer Renderer, log *zap.Logger) *ResultService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResultService{provider: provider, renderer: renderer, log: log}
}

// List returns every result, newest first, with categories resolved.
func (s *ResultService) List(ctx context.Context) ([]models.Result, error) {
	st, err := connect(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	results, err := st.ListResults(ctx)
	if err != nil {
		return nil, apperror.Persistence("Failed to retrieve results", err)
	}

	ids := make([]string, len(results))
	for i := range results {
		ids[i] = results[i].CategoryID
	}
	categories, err := st.FindCategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Persistence("Failed to retrieve results", err)
	}
	for i := range results {
		results[i].Category = categories[results[i].CategoryID]
	}
	return results, nil
}

// Create stores a new result. The referenced category does not have to exist.
func (s *ResultService) Create(ctx context.Context, in *models.ResultInput) (*models.Result, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}

	result, err := in.NewResult()
	if err != nil {
		return nil, apperror.Validation(`"eventDate" must be a valid date`)
	}

	st, err := connect(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	if err := st.CreateResult(ctx, result); err != nil {
		return nil, apperror.Persistence("Failed to create result", err)
	}
	if err := s.resolve(ctx, st, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ResultService) Get(ctx context.Context, id string) (*models.Result, error) {
	st, err := connect(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	result, err := st.GetResult(ctx, id)
	if err != nil {
		return nil, storeError(err, resultNotFound, "Failed to retrieve result")
	}
	if err := s.resolve(ctx, st, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces the required fields of the result. The individual and group
// brackets are replaced only when present in the input.
func (s *ResultService) Update(ctx context.Context, id string, in *models.ResultInput) (*models.Result, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}

	st, err := connect(ctx, s.provider)
	if err != nil {
		return nil, err
	}

	result, err := st.GetResult(ctx, id)
	if err != nil {
		return nil, storeError(err, resultNotFound, "Failed to update result")
	}
	if err := in.ApplyTo(result); err != nil {
		return nil, apperror.Validation(`"eventDate" must be a valid date`)
	}
	if err := st.UpdateResult(ctx, result); err != nil {
		return nil, storeError(err, resultNotFound, "Failed to update result")
	}
	if err := s.resolve(ctx, st, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ResultService) Delete(ctx context.Context, id string) error {
	st, err := connect(ctx, s.provider)
	if err != nil {
		return err
	}

	if err := st.DeleteResult(ctx, id); err != nil {
		return storeError(err, resultNotFound, "Failed to delete result")
	}
	return nil
}

// Export loads the result and renders it to PDF. Nothing is written to the
// client here, so a failure can still be reported as a normal error response.
func (s *ResultService) Export(ctx context.Context, id string) (*models.Result, []byte, error) {
	result, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	doc, err := s.renderer.Render(ctx, result)
	if err != nil {
		metrics.PDFExportTotal.WithLabelValues("render_failed").Inc()
		s.log.Error("rendering result pdf", zap.String("result_id", id), zap.Error(err))
		return nil, nil, apperror.Rendering("Error generating PDF", err)
	}
	metrics.PDFExportBytes.Observe(float64(len(doc)))
	return result, doc, nil
}

// resolve attaches the referenced category, leaving it nil when the reference
// is dangling.
func (s *ResultService) resolve(ctx context.Context, st store.Store, result *models.Result) error {
	categories, err := st.FindCategoriesByIDs(ctx, []string{result.CategoryID})
	if err != nil {
		return apperror.Persistence("Failed to resolve category", err)
	}
	result.Category = categories[result.CategoryID]
	return nil
}
