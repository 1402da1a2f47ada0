package export

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEngine records the HTML it was asked to print and returns canned
// bytes or a canned error.
type stubEngine struct {
	lastHTML string
	pdf      []byte
	err      error
}

func (s *stubEngine) PrintPDF(_ context.Context, html string) ([]byte, error) {
	s.lastHTML = html
	if s.err != nil {
		return nil, s.err
	}
	return s.pdf, nil
}

func TestExport_Success(t *testing.T) {
	engine := &stubEngine{pdf: []byte("%PDF-1.4 fake")}
	e := New(engine)

	data := json.RawMessage(`{"invoice_number":"INV-1"}`)
	pdf, filename, err := e.Export(context.Background(), "invoice", data, "green")
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.4 fake"), pdf)
	assert.Equal(t, "invoice.pdf", filename)
	assert.True(t, strings.HasPrefix(engine.lastHTML, "<html>"))
	assert.Contains(t, engine.lastHTML, "INV-1")
	assert.Contains(t, engine.lastHTML, "#059669", "green theme applied")
}

func TestExport_EngineFailure(t *testing.T) {
	engine := &stubEngine{err: errors.New("chrome crashed")}
	e := New(engine)

	pdf, _, err := e.Export(context.Background(), "modern", nil, "blue")
	require.Error(t, err)
	assert.Nil(t, pdf, "no partial file on failure")
	assert.Contains(t, err.Error(), "pdf generation failed")
}

func TestExport_MalformedDataSkipsEngine(t *testing.T) {
	engine := &stubEngine{pdf: []byte("unused")}
	e := New(engine)

	_, _, err := e.Export(context.Background(), "invoice", json.RawMessage(`[1,2]`), "blue")
	require.Error(t, err)
	assert.Empty(t, engine.lastHTML, "engine must not run for undecodable data")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "invoice.pdf", Filename("invoice"))
	assert.Equal(t, "document.pdf", Filename(""))
}
