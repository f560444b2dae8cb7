package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/resultboard/internal/models"
)

func sampleResult() *models.Result {
	return &models.Result{
		ID:         "0b6f2f5e-51a4-4c36-9d0e-6a5f3c2b1a90",
		CategoryID: "6f1c2b8e-3c1d-4a5e-9b7f-0a1b2c3d4e5f",
		Category:   &models.Category{Name: "Swimming"},
		EventName:  "100m Freestyle",
		EventDate:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Individual: &models.Podium{
			First:  &models.Position{Name: "Alice", Details: "58.2s"},
			Second: &models.Position{Name: "Bob"},
		},
	}
}

func TestRenderContainsText(t *testing.T) {
	doc, err := NewRenderer("").Render(context.Background(), sampleResult())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	for _, text := range []string{"100m Freestyle", "Swimming", "May 1, 2024", "Individual", "1st: Alice \\(58.2s\\)", "2nd: Bob"} {
		assert.Contains(t, string(doc), text)
	}
}

func TestRenderDanglingCategory(t *testing.T) {
	result := sampleResult()
	result.Category = nil
	result.Individual = nil

	doc, err := NewRenderer("").Render(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "Unknown category")
}

func TestRenderWithQRCode(t *testing.T) {
	plain, err := NewRenderer("").Render(context.Background(), sampleResult())
	require.NoError(t, err)

	withQR, err := NewRenderer("https://results.example.com/").Render(context.Background(), sampleResult())
	require.NoError(t, err)

	assert.Contains(t, string(withQR), "/Subtype /Image")
	assert.NotContains(t, string(plain), "/Subtype /Image")
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer("").Render(ctx, sampleResult())
	assert.ErrorIs(t, err, context.Canceled)
}
