package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/docforge/docforge/internal/render"
)

// ExportRequest represents the request body for /api/export-pdf. UserID is
// optional; when present the export spends a quota credit.
type ExportRequest struct {
	DocType string          `json:"docType"`
	Theme   string          `json:"theme,omitempty"`
	Data    json.RawMessage `json:"data"`
	UserID  string          `json:"user_id,omitempty"`
}

// handleExportPDF renders a document model to PDF and streams it back as a
// download.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.UserID != "" {
		decision := s.gate.Authorize(r.Context(), req.UserID)
		if !decision.Allowed {
			resp := map[string]any{"error": decision.Reason}
			if decision.Profile != nil {
				resp["remaining"] = decision.Profile.Remaining()
			}
			s.jsonResponse(w, http.StatusForbidden, resp)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.exportTimeout)
	defer cancel()

	pdf, filename, err := s.exporter.Export(ctx, req.DocType, req.Data, req.Theme)
	if err != nil {
		if errors.Is(err, render.ErrMalformedData) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Export failed: %v", err)
		s.jsonResponse(w, http.StatusInternalServerError, map[string]string{
			"error":  "PDF generation failed",
			"detail": err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}
