// Package schemas holds the JSON Schemas for the three document types and
// validates generated documents against them. Schemas are deliberately
// permissive about missing fields (everything is optional at the rendering
// boundary) and strict about field types.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// ForDocType returns the schema source for a document type.
func ForDocType(docType string) (string, error) {
	data, err := schemaFiles.ReadFile(docType + ".schema.json")
	if err != nil {
		return "", fmt.Errorf("no schema for docType %q", docType)
	}
	return string(data), nil
}

// ValidateDocument validates a JSON document against the schema for the
// given document type. A *ValidationError reports field-level mismatches.
func ValidateDocument(docType, jsonContent string) error {
	schema, err := ForDocType(docType)
	if err != nil {
		return err
	}
	return ValidateJSONString(schema, jsonContent)
}
