package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// EnsureProfileRequest represents the request body for /api/profiles/ensure.
type EnsureProfileRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
}

// Validate validates the EnsureProfileRequest using the validator.
func (r *EnsureProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleEnsureProfile lazily creates a free-tier profile and returns the
// current row. Called on login so the quota gate always has a row to check.
func (s *Server) handleEnsureProfile(w http.ResponseWriter, r *http.Request) {
	var req EnsureProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "user_id is required and email must be valid")
		return
	}

	profile, err := s.profiles.EnsureProfile(r.Context(), req.UserID, req.Email)
	if err != nil {
		log.Printf("Ensure profile failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to ensure profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleGetProfile returns a profile by user ID.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	profile, err := s.profiles.GetProfile(r.Context(), userID)
	if err != nil {
		log.Printf("Get profile failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleResetUsage zeroes a user's export counter.
func (s *Server) handleResetUsage(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	if err := s.profiles.ResetUsage(r.Context(), userID); err != nil {
		log.Printf("Reset usage failed: %v", err)
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
