package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/farellandr/resultboard/internal/helpers"
	"github.com/farellandr/resultboard/internal/models"
	"github.com/farellandr/resultboard/internal/services"
	"github.com/farellandr/resultboard/internal/store"
	"github.com/farellandr/resultboard/internal/store/sqlstore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRenderer struct {
	err error
}

func (r stubRenderer) Render(_ context.Context, result *models.Result) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.3 " + result.EventName), nil
}

func setupTestEngine(t *testing.T, renderer services.Renderer) *gin.Engine {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	s, err := sqlstore.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	provider := store.Static(s)

	categories := NewCategoryHandler(services.NewCategoryService(provider))
	results := NewResultHandler(services.NewResultService(provider, renderer, nil), zap.NewNop())
	health := NewHealthHandler(provider)
	health.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(helpers.ErrorDetailKey, true)
		c.Next()
	})
	r.GET("/health", health.Health)
	r.GET("/categories", categories.ListCategories)
	r.POST("/categories", categories.CreateCategory)
	r.GET("/categories/:id", categories.GetCategory)
	r.PUT("/categories/:id", categories.UpdateCategory)
	r.DELETE("/categories/:id", categories.DeleteCategory)
	r.GET("/results", results.ListResults)
	r.POST("/results", results.CreateResult)
	r.GET("/results/:id", results.GetResult)
	r.PUT("/results/:id", results.UpdateResult)
	r.DELETE("/results/:id", results.DeleteResult)
	r.GET("/results/:id/pdf", results.ExportResultPDF)
	return r
}

func request(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestCategoryHandlers(t *testing.T) {
	r := setupTestEngine(t, stubRenderer{})

	w := request(r, http.MethodPost, "/categories", `{"name":"  Swimming ","description":"Pool"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Category
	decodeInto(t, w, &created)
	assert.Equal(t, "Swimming", created.Name)

	w = request(r, http.MethodPut, "/categories/"+created.ID, `{"name":"Aquatics"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Category
	decodeInto(t, w, &updated)
	assert.Equal(t, "Aquatics", updated.Name)
	assert.Equal(t, "Pool", updated.Description)

	w = request(r, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Category
	decodeInto(t, w, &list)
	require.Len(t, list, 1)

	w = request(r, http.MethodGet, "/categories/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Category not found"}`, w.Body.String())

	w = request(r, http.MethodPost, "/categories", `{"description":"no name"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"\"name\" is required"}`, w.Body.String())
}

func TestResultValidationMessages(t *testing.T) {
	r := setupTestEngine(t, stubRenderer{})
	category := uuid.NewString()

	tests := []struct {
		body string
		want string
	}{
		{`{"eventName":"Relay","eventDate":"2024-05-01"}`, `"category" is required`},
		{`{"category":"` + category + `","eventDate":"2024-05-01"}`, `"eventName" is required`},
		{`{"category":"` + category + `","eventName":"Relay"}`, `"eventDate" is required`},
		{`{"category":"` + category + `","eventName":42,"eventDate":"2024-05-01"}`, `"eventName" must be a string`},
		{`{"category":"` + category + `","eventName":"Relay","eventDate":"2024-05-01","individual":{"second":{}}}`, `"individual.second.name" is required`},
		{`[1,2]`, `"value" must be of type object`},
	}
	for _, tt := range tests {
		w := request(r, http.MethodPost, "/results", tt.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tt.body)
		var body helpers.ErrorResponse
		decodeInto(t, w, &body)
		assert.Equal(t, tt.want, body.Error, tt.body)
	}

	w := request(r, http.MethodGet, "/results", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestResultUpdateAndDelete(t *testing.T) {
	r := setupTestEngine(t, stubRenderer{})
	category := uuid.NewString()

	w := request(r, http.MethodPost, "/results", `{"category":"`+category+`","eventName":"Relay","eventDate":"2024-05-01","group":{"first":{"name":"Team Blue"}}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Result
	decodeInto(t, w, &created)

	w = request(r, http.MethodPut, "/results/"+created.ID, `{"category":"`+category+`","eventName":"Relay Final","eventDate":"2024-05-02T10:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Result
	decodeInto(t, w, &updated)
	assert.Equal(t, "Relay Final", updated.EventName)
	require.NotNil(t, updated.Group)
	assert.Equal(t, "Team Blue", updated.Group.First.Name)

	w = request(r, http.MethodPut, "/results/"+uuid.NewString(), `{"category":"`+category+`","eventName":"x","eventDate":"2024-05-02"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(r, http.MethodDelete, "/results/"+created.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Result deleted successfully"}`, w.Body.String())

	w = request(r, http.MethodGet, "/results/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Result not found"}`, w.Body.String())
}

func TestExportResultPDF(t *testing.T) {
	r := setupTestEngine(t, stubRenderer{})

	w := request(r, http.MethodPost, "/results", `{"category":"`+uuid.NewString()+`","eventName":"Relay","eventDate":"2024-05-01"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Result
	decodeInto(t, w, &created)

	w = request(r, http.MethodGet, "/results/"+created.ID+"/pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.3 Relay", w.Body.String())

	w = request(r, http.MethodGet, "/results/"+uuid.NewString()+"/pdf", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Result not found"}`, w.Body.String())
}

func TestExportResultPDFRenderFailure(t *testing.T) {
	r := setupTestEngine(t, stubRenderer{err: errors.New("font missing")})

	w := request(r, http.MethodPost, "/results", `{"category":"`+uuid.NewString()+`","eventName":"Relay","eventDate":"2024-05-01"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Result
	decodeInto(t, w, &created)

	w = request(r, http.MethodGet, "/results/"+created.ID+"/pdf", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Error generating PDF","message":"font missing"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	r := setupTestEngine(t, stubRenderer{})

	w := request(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"status": "OK",
		"message": "Server is running",
		"database": "connected",
		"timestamp": "2024-05-01T12:00:00Z"
	}`, w.Body.String())
}
