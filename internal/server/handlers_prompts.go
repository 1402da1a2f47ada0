package server

import (
	"net/http"

	"github.com/docforge/docforge/internal/prompts"
)

// handleListPrompts returns the curated prompt variants for a document type.
func (s *Server) handleListPrompts(w http.ResponseWriter, r *http.Request) {
	docType := r.PathValue("docType")

	variants, err := prompts.Library(docType)
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "Unknown docType")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"docType": docType,
		"prompts": variants,
	})
}
