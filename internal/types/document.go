// Package types defines the document models, profile records, and shared
// data structures used across the DocForge service.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Document type identifiers. The renderer additionally accepts the resume
// template variants (classic, modern, minimal) as docType values.
const (
	DocTypeResume      = "resume"
	DocTypeCoverLetter = "cover_letter"
	DocTypeInvoice     = "invoice"
)

// Resume template variants understood by the renderer.
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
	TemplateMinimal = "minimal"
)

// Document is a saved document row in the documents table. Content holds the
// free-text the user started from; the structured model lives client-side
// until export.
type Document struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
