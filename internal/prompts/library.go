package prompts

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Variant is one curated starter prompt offered to clients for a document
// type.
type Variant struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Prompt      string `json:"prompt"`
	Description string `json:"description,omitempty"`
}

var (
	libraryOnce sync.Once
	library     map[string][]Variant
	libraryErr  error
)

// Library returns the prompt variants for a document type, or an error for
// unknown types.
func Library(docType string) ([]Variant, error) {
	libraryOnce.Do(func() {
		data, err := promptFiles.ReadFile("library.json")
		if err != nil {
			libraryErr = fmt.Errorf("failed to read prompt library: %w", err)
			return
		}
		if err := json.Unmarshal(data, &library); err != nil {
			libraryErr = fmt.Errorf("failed to parse prompt library: %w", err)
		}
	})
	if libraryErr != nil {
		return nil, libraryErr
	}

	variants, ok := library[docType]
	if !ok {
		return nil, fmt.Errorf("no prompt library for docType %q", docType)
	}
	return variants, nil
}
