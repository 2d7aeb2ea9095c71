// Package schemas provides JSON Schema validation for bulk content documents.
// The schema is embedded at compile time so validation works from any working
// directory.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed content_schema.json
var contentSchema []byte

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates the schema violations found in a document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("content validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateContent validates a full portfolio content document against the
// embedded schema. It returns nil for a valid document, a *ValidationError
// listing field paths for an invalid one, and a plain error when the
// document is not JSON at all.
func ValidateContent(doc []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(contentSchema)
	docLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to validate content document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
