// Package pdf renders a single result as a one-page Letter document.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"

	"github.com/farellandr/resultboard/internal/models"
)

const (
	marginX  = 100.0
	qrSize   = 96.0
	qrImage  = "result-link"
	dateForm = "January 2, 2006"
)

type Renderer struct {
	baseURL string
}

// NewRenderer returns a renderer. When baseURL is not empty every document
// carries a QR code linking to the result's JSON resource under baseURL.
func NewRenderer(baseURL string) *Renderer {
	return &Renderer{baseURL: strings.TrimRight(baseURL, "/")}
}

// Render lays out the result in memory and returns the finished document.
func (r *Renderer) Render(ctx context.Context, result *models.Result) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetCompression(false)
	doc.SetTitle(result.EventName, true)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 24)
	doc.Text(marginX, 100, tr(result.EventName))

	doc.SetFont("Helvetica", "", 18)
	doc.Text(marginX, 150, tr(result.CategoryName()))
	doc.Text(marginX, 200, result.EventDate.UTC().Format(dateForm))

	y := 260.0
	y = writePodium(doc, tr, "Individual", result.Individual, y)
	writePodium(doc, tr, "Group", result.Group, y)

	if r.baseURL != "" {
		if err := r.addQRCode(doc, result.ID); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writePodium(doc *fpdf.Fpdf, tr func(string) string, title string, podium *models.Podium, y float64) float64 {
	places := podium.Places()
	if len(places) == 0 {
		return y
	}

	doc.SetFont("Helvetica", "B", 14)
	doc.Text(marginX, y, title)
	y += 22

	doc.SetFont("Helvetica", "", 12)
	for _, place := range places {
		line := place.Label + ": " + place.Position.Name
		if place.Position.Details != "" {
			line += " (" + place.Position.Details + ")"
		}
		doc.Text(marginX+12, y, tr(line))
		y += 18
	}
	return y + 16
}

func (r *Renderer) addQRCode(doc *fpdf.Fpdf, id string) error {
	png, err := qrcode.Encode(r.baseURL+"/api/results/"+id, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("encoding qr code: %w", err)
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(qrImage, opts, bytes.NewReader(png))

	pageW, _ := doc.GetPageSize()
	doc.ImageOptions(qrImage, pageW-marginX-qrSize+40, 60, qrSize, qrSize, false, opts, 0, "")
	return doc.Error()
}
