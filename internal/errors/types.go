package errors

import (
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeProvider      ErrorType = "provider"
	ErrorTypeRender        ErrorType = "render"
	ErrorTypeStorage       ErrorType = "storage"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeConfiguration ErrorType = "configuration"
	ErrorTypeTimeout       ErrorType = "timeout"
)

// AppError is the base error type for all application errors
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a new AppError
func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]any),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   err,
		Context: make(map[string]any),
	}
}

// Validation creates a validation error
func Validation(message string) *AppError {
	return New(ErrorTypeValidation, message)
}

// Provider creates a payment provider error carrying the provider's text
func Provider(description string, err error) *AppError {
	return Wrap(err, ErrorTypeProvider, description)
}

// Render creates a document rendering error
func Render(message string, err error) *AppError {
	return Wrap(err, ErrorTypeRender, message)
}

// Storage creates a storage error
func Storage(message string, err error) *AppError {
	return Wrap(err, ErrorTypeStorage, message)
}

// NotFound creates a not found error
func NotFound(resource string) *AppError {
	return New(ErrorTypeNotFound, fmt.Sprintf("%s not found", resource))
}

// Configuration creates a configuration error
func Configuration(message string) *AppError {
	return New(ErrorTypeConfiguration, message)
}

// Timeout creates a timeout error
func Timeout(operation string) *AppError {
	return New(ErrorTypeTimeout, fmt.Sprintf("operation %s timed out", operation))
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, errorType ErrorType) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Type == errorType
}
