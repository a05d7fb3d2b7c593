package service

import (
	"errors"
	"fmt"

	"worldforge/internal/graph"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
)

// ValidationError represents a validation error with a field name.
// Allowed lists the permitted values when the field is vocabulary-bound.
type ValidationError struct {
	Field   string
	Message string
	Allowed []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NotFoundError reports a missing project, entity, note or connection.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold for every NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// fromGraphError converts the graph package's typed errors into service errors.
// Other errors are returned unchanged.
func fromGraphError(err error) error {
	var vErr *graph.ValidationError
	if errors.As(err, &vErr) {
		msg := "is required"
		if vErr.Value != "" {
			msg = fmt.Sprintf("%q is not allowed", vErr.Value)
		}
		return &ValidationError{Field: vErr.Field, Message: msg, Allowed: vErr.Allowed}
	}
	var nfErr *graph.NotFoundError
	if errors.As(err, &nfErr) {
		return &NotFoundError{Resource: "entity", ID: nfErr.Ref.String()}
	}
	return err
}
