package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/resultboard/internal/database"
	"github.com/farellandr/resultboard/internal/pdf"
	"github.com/farellandr/resultboard/internal/store"
	"github.com/farellandr/resultboard/internal/store/sqlstore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	s, err := sqlstore.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	return NewRouter(Options{
		Provider:    store.Static(s),
		Renderer:    pdf.NewRenderer(""),
		CORSOrigins: []string{"http://localhost:3000"},
	})
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestCategoryResultPDFFlow(t *testing.T) {
	r := setupTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/categories", `{"name":"Swimming"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	categoryID := decodeBody(t, w)["id"].(string)
	require.NotEmpty(t, categoryID)

	w = do(t, r, http.MethodPost, "/api/results", `{
		"category": "`+categoryID+`",
		"eventName": "100m Freestyle",
		"eventDate": "2024-05-01",
		"individual": {"first": {"name": "Alice"}}
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	result := decodeBody(t, w)
	assert.Equal(t, "Alice", result["individual"].(map[string]any)["first"].(map[string]any)["name"])
	assert.Equal(t, "Swimming", result["category"].(map[string]any)["name"])
	assert.Equal(t, categoryID, result["categoryId"])
	resultID := result["id"].(string)

	w = do(t, r, http.MethodGet, "/api/results/"+resultID+"/pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="result-`+resultID+`.pdf"`, w.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, w.Body.Bytes())
	assert.Contains(t, w.Body.String(), "100m Freestyle")
}

func TestUpdateResultWithEmptyBody(t *testing.T) {
	r := setupTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/results", `{"category":"`+uuid.NewString()+`","eventName":"Relay","eventDate":"2024-05-01"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody(t, w)["id"].(string)

	w = do(t, r, http.MethodPut, "/api/results/"+id, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `"category" is required`, decodeBody(t, w)["error"])

	w = do(t, r, http.MethodPut, "/api/results/"+id, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDanglingCategoryIsNull(t *testing.T) {
	r := setupTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/results", `{"category":"`+uuid.NewString()+`","eventName":"Relay","eventDate":"2024-05-01"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Contains(t, body, "category")
	assert.Nil(t, body["category"])
}

func TestDeleteCategoryTwice(t *testing.T) {
	r := setupTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/categories", `{"name":"Swimming"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = do(t, r, http.MethodDelete, "/api/categories/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Category deleted successfully", decodeBody(t, w)["message"])

	w = do(t, r, http.MethodDelete, "/api/categories/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Category not found", decodeBody(t, w)["error"])
}

func TestUnknownAPIRoute(t *testing.T) {
	r := setupTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "API endpoint not found", decodeBody(t, w)["error"])
}

func TestHealthDoesNotNeedStore(t *testing.T) {
	handle := database.NewHandle(func(ctx context.Context) (store.Store, error) {
		return nil, errors.New("connection refused")
	})
	r := NewRouter(Options{Provider: handle, Renderer: pdf.NewRenderer(""), ErrorDetail: true})

	w := do(t, r, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Server is running", body["message"])
	assert.Equal(t, database.StateDisconnected, body["database"])
	assert.NotEmpty(t, body["timestamp"])

	w = do(t, r, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "Database connection failed", body["error"])
	assert.Equal(t, "connection refused", body["message"])
}

func TestCORSPreflight(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/results", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
