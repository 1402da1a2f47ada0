package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/docforge/docforge/internal/generate"
)

// GenerateRequest represents the request body for /api/generate.
type GenerateRequest struct {
	DocType string `json:"docType"`
	Prompt  string `json:"prompt,omitempty"`
}

// handleGenerate asks the model for a document draft and returns the parsed
// JSON model.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.DocType == "" {
		s.errorResponse(w, http.StatusBadRequest, "docType required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.generateTimeout)
	defer cancel()

	doc, err := s.generator.Generate(ctx, req.DocType, req.Prompt)
	if err != nil {
		var unsupported *generate.ErrUnsupportedDocType
		if errors.As(err, &unsupported) {
			s.errorResponse(w, http.StatusBadRequest, "Unsupported docType")
			return
		}

		var invalid *generate.ErrInvalidCompletion
		if errors.As(err, &invalid) {
			// Surface the verbatim model output so clients can show what
			// came back.
			s.jsonResponse(w, http.StatusInternalServerError, map[string]string{
				"error": "Invalid AI response",
				"raw":   invalid.Raw,
			})
			return
		}

		log.Printf("Generation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		log.Printf("Error writing generation response: %v", err)
	}
}
