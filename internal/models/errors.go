package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes application errors for clients
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "Validation"
	ErrorTypeNotFound      ErrorType = "NotFound"
	ErrorTypeUnauthorized  ErrorType = "Unauthorized"
	ErrorTypeInvalidState  ErrorType = "InvalidState"
	ErrorTypeInvalidTarget ErrorType = "InvalidTarget"
	ErrorTypeConflict      ErrorType = "Conflict"
	ErrorTypeLimitExceeded ErrorType = "LimitExceeded"
	ErrorTypeAggregation   ErrorType = "Aggregation"
	ErrorTypeInternal      ErrorType = "Internal"
)

// AppError is a structured application error carrying an HTTP status,
// a category tag, and a human-readable message. The wrapped cause is
// for logs only and is never serialized to clients.
type AppError struct {
	Type    ErrorType
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// AsAppError extracts an *AppError from an error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// NewValidationError creates a 400 validation error
func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Status: http.StatusBadRequest, Message: message}
}

// NewNotFoundError creates a 404 error for an absent entity
func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Status: http.StatusNotFound, Message: message}
}

// NewUnauthorizedError creates a 403 error for a requester that is
// authenticated but not allowed to perform the operation
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Type: ErrorTypeUnauthorized, Status: http.StatusForbidden, Message: message}
}

// NewUnauthenticatedError creates a 401 error for a missing or invalid token
func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Type: ErrorTypeUnauthorized, Status: http.StatusUnauthorized, Message: message}
}

// NewInvalidStateError creates a 409 error for an operation rejected by
// the current state of the entity
func NewInvalidStateError(message string) *AppError {
	return &AppError{Type: ErrorTypeInvalidState, Status: http.StatusConflict, Message: message}
}

// NewInvalidTargetError creates a 422 error for an operation aimed at an
// ineligible target entity
func NewInvalidTargetError(message string) *AppError {
	return &AppError{Type: ErrorTypeInvalidTarget, Status: http.StatusUnprocessableEntity, Message: message}
}

// NewConflictError creates a 409 error for a duplicate entry
func NewConflictError(message string) *AppError {
	return &AppError{Type: ErrorTypeConflict, Status: http.StatusConflict, Message: message}
}

// NewLimitExceededError creates a 422 error for a business limit violation
func NewLimitExceededError(message string) *AppError {
	return &AppError{Type: ErrorTypeLimitExceeded, Status: http.StatusUnprocessableEntity, Message: message}
}

// NewAggregationError wraps a storage failure raised while building an
// analytics payload
func NewAggregationError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeAggregation, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// NewStorageError wraps an underlying store failure. The driver error is
// kept for logging; clients only see the generic message.
func NewStorageError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Status: http.StatusInternalServerError, Message: message, Err: err}
}
