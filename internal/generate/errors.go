package generate

import "fmt"

// ErrUnsupportedDocType is returned when a generation request names a
// document type with no prompt template.
type ErrUnsupportedDocType struct {
	DocType string
}

func (e *ErrUnsupportedDocType) Error() string {
	return fmt.Sprintf("unsupported docType %q", e.DocType)
}

// ErrInvalidCompletion is returned when the model reply cannot be used as a
// document: either it is not valid JSON or it fails schema validation. Raw
// carries the model's verbatim output so handlers can surface it.
type ErrInvalidCompletion struct {
	Raw   string
	Cause error
}

func (e *ErrInvalidCompletion) Error() string {
	return fmt.Sprintf("model returned an unusable document: %v", e.Cause)
}

func (e *ErrInvalidCompletion) Unwrap() error {
	return e.Cause
}
