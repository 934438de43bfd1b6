// Package errors provides custom error types for the cinetech catalog system.
// These errors enable programmatic error checking by callers (the CLI and
// any other presentation layer) while keeping the catalog engine free of
// presentation concerns.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// It's an alias for the standard library errors.As for convenience.
var As = errors.As

// Common sentinel errors for the catalog system
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict indicates that an operation was blocked by a
	// referential-integrity dependency
	ErrConflict = errors.New("conflict")

	// ErrBadFormat indicates that a snapshot document has the wrong shape
	ErrBadFormat = errors.New("bad format")

	// ErrServiceUnavailable indicates that the external metadata service
	// failed or timed out
	ErrServiceUnavailable = errors.New("service unavailable")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Resource string
	ID       int
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource string, id int) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure on a create or update
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConflictError represents a delete blocked by records that still
// reference the target. Dependents carries the exact referencing count.
type ConflictError struct {
	Resource   string
	ID         int
	Dependents int
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with ID %d has %d dependent film(s)", e.Resource, e.ID, e.Dependents)
}

// Is implements errors.Is support
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NewConflictError creates a new ConflictError
func NewConflictError(resource string, id, dependents int) *ConflictError {
	return &ConflictError{Resource: resource, ID: id, Dependents: dependents}
}

// ImportFormatError indicates a snapshot document is missing required
// top-level keys
type ImportFormatError struct {
	Missing []string
}

// Error implements the error interface
func (e *ImportFormatError) Error() string {
	return fmt.Sprintf("snapshot missing required key(s): %s", strings.Join(e.Missing, ", "))
}

// Is implements errors.Is support
func (e *ImportFormatError) Is(target error) bool {
	return target == ErrBadFormat
}

// ExternalServiceError represents a failure talking to the external
// film-metadata service
type ExternalServiceError struct {
	Service    string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *ExternalServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Service, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrServiceUnavailable
}

// IOError represents a file system operation error
type IOError struct {
	Operation string
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps an IO error with context
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// ParseError represents a parsing/unmarshaling error
type ParseError struct {
	Format string
	Target string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s as %s: %v", e.Target, e.Format, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapParse wraps a parsing error with context
func WrapParse(format, target string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, Target: target, Err: err}
}
