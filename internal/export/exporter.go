package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docforge/docforge/internal/render"
)

// PDFEngine rasterizes an HTML document into PDF bytes. The production
// implementation is ChromeEngine; tests substitute a stub.
type PDFEngine interface {
	PrintPDF(ctx context.Context, html string) ([]byte, error)
}

// Exporter produces downloadable PDFs from document models.
type Exporter struct {
	engine PDFEngine
}

// New creates an Exporter backed by the given engine.
func New(engine PDFEngine) *Exporter {
	return &Exporter{engine: engine}
}

// Export renders the document and prints it. It returns the PDF bytes and
// the download filename, derived from docType.
func (e *Exporter) Export(ctx context.Context, docType string, data json.RawMessage, theme string) ([]byte, string, error) {
	html, err := render.HTML(docType, data, theme)
	if err != nil {
		return nil, "", err
	}

	pdf, err := e.engine.PrintPDF(ctx, html)
	if err != nil {
		return nil, "", fmt.Errorf("pdf generation failed: %w", err)
	}

	return pdf, Filename(docType), nil
}

// Filename names the exported attachment after the document type.
func Filename(docType string) string {
	if docType == "" {
		docType = "document"
	}
	return docType + ".pdf"
}
