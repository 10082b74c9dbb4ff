package codegen

import "fmt"

// ArtifactError reports a failure to produce one artifact of one model, whether laying
// out its path, composing it or writing it.
// It wraps the cause, so errors.Is(err, stub.ErrTemplateMissing) works through it.
type ArtifactError struct {
	Model string
	Kind  Kind
	Cause error
}

// Error implements the error interface
func (e *ArtifactError) Error() string {
	return fmt.Sprintf("failed to generate %s for model %s: %v", e.Kind, e.Model, e.Cause)
}

// Unwrap returns the underlying error
func (e *ArtifactError) Unwrap() error {
	return e.Cause
}
