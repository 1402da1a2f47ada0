package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SaveDocumentRequest represents the request body for POST /api/documents.
type SaveDocumentRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate validates the SaveDocumentRequest using the validator.
func (r *SaveDocumentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleSaveDocument stores a document for later editing.
func (s *Server) handleSaveDocument(w http.ResponseWriter, r *http.Request) {
	var req SaveDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.Title == "" {
		req.Title = "Untitled"
	}

	doc, err := s.documents.SaveDocument(r.Context(), req.UserID, req.Title, req.Content)
	if err != nil {
		log.Printf("Save document failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save document")
		return
	}

	s.jsonResponse(w, http.StatusCreated, doc)
}

// handleListDocuments returns the caller's saved documents, newest first.
// The user is identified by the user_id query parameter.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	docs, err := s.documents.ListDocuments(r.Context(), userID)
	if err != nil {
		log.Printf("List documents failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"documents": docs})
}

// handleDeleteDocument removes one of the caller's documents.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := s.documents.DeleteDocument(r.Context(), userID, docID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
