// Package generate turns a short user hint into a complete, schema-valid
// document by prompting the text-generation service and validating its reply.
package generate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docforge/docforge/internal/prompts"
	"github.com/docforge/docforge/schemas"
)

const promptFile = "generation.json"

// TextGenerator produces a JSON completion for a prompt. *llm.GeminiClient
// satisfies this.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Generator builds documents of a supported type from free-form hints.
type Generator struct {
	llm TextGenerator
}

func New(llm TextGenerator) *Generator {
	return &Generator{llm: llm}
}

// Generate asks the model for a document of the given type. The hint
// describes what the document should be about; when empty, a per-type
// default is substituted. The returned bytes are valid JSON that passed
// schema validation for the document type.
func (g *Generator) Generate(ctx context.Context, docType, hint string) (json.RawMessage, error) {
	template, err := prompts.Get(promptFile, docType)
	if err != nil {
		return nil, &ErrUnsupportedDocType{DocType: docType}
	}

	if hint == "" {
		hint, err = prompts.Get(promptFile, docType+"_default")
		if err != nil {
			return nil, fmt.Errorf("missing default hint for %s: %w", docType, err)
		}
	}

	prompt := prompts.Format(template, map[string]string{"Context": hint})

	raw, err := g.llm.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("document generation failed: %w", err)
	}

	var parsed json.RawMessage
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &ErrInvalidCompletion{Raw: raw, Cause: err}
	}

	if err := schemas.ValidateDocument(docType, raw); err != nil {
		return nil, &ErrInvalidCompletion{Raw: raw, Cause: err}
	}

	return parsed, nil
}
