package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Categories every layer maps onto. Transports translate only these.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Domain errors, each wrapping its category.
var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	ErrRecipientNotFound  = fmt.Errorf("recipient not found: %w", ErrNotFound)
	ErrSelfShareForbidden = fmt.Errorf("cannot share a process with its owner: %w", ErrForbidden)
	ErrAlreadyShared      = fmt.Errorf("process already shared with this user: %w", ErrConflict)
)

// FieldError is a rejected input field. Field uses the wire name.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every rejected field of one request. It matches
// ErrValidation with errors.Is.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError rejects a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors wraps already collected field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// GenerationFailedError is returned when the AI workflow webhook answers with
// a non-2xx status or cannot be reached. It is never retried automatically.
type GenerationFailedError struct {
	Action GenerationAction
	Status int // 0 for transport failures
	Detail string
}

func (e *GenerationFailedError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("generation %s failed: %s", e.Action, e.Detail)
	}
	return fmt.Sprintf("generation %s failed: status %d: %s", e.Action, e.Status, e.Detail)
}

// UploadFailedError identifies the file whose upload aborted a submission.
type UploadFailedError struct {
	FileName string
	Err      error
}

func (e *UploadFailedError) Error() string {
	return fmt.Sprintf("upload %q failed: %v", e.FileName, e.Err)
}

func (e *UploadFailedError) Unwrap() error { return e.Err }
