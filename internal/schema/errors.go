package schema

import (
	"errors"
	"strings"
)

// ErrInvalidSchema is returned when a model's column set cannot be generated from:
// an empty or malformed model name, a malformed column name, or a duplicate column.
var ErrInvalidSchema = errors.New("invalid schema")

// SchemaError describes which model (and column, if any) failed validation.
type SchemaError struct {
	Model   string
	Column  string
	Message string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("invalid schema")
	if e.Model != "" {
		b.WriteString(" for model ")
		b.WriteString(e.Model)
	}
	if e.Column != "" {
		b.WriteString(" column ")
		b.WriteString(e.Column)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether target is ErrInvalidSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}
