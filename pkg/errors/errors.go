// Package errors provides typed errors for actions-context
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates missing or malformed run configuration,
	// e.g. no repository identity in the environment or payload
	ErrConfig ErrorType = iota
	// ErrParse indicates an event payload that is not valid JSON
	ErrParse
	// ErrPayload indicates an event payload file that could not be read
	ErrPayload
	// ErrValidation indicates an input validation error
	ErrValidation
)

// ContextError is the base error type for all actions-context errors
type ContextError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *ContextError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *ContextError) Unwrap() error {
	return e.Cause
}

// New creates a new ContextError
func New(errType ErrorType, message string, cause error) *ContextError {
	return &ContextError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *ContextError) WithContext(key string, value interface{}) *ContextError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var ctxErr *ContextError
	if err == nil {
		return false
	}
	if errors.As(err, &ctxErr) {
		return ctxErr.Type == errType
	}
	return false
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrParse:
		return "PARSE"
	case ErrPayload:
		return "PAYLOAD"
	case ErrValidation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *ContextError {
	return New(ErrConfig, message, cause)
}

// ParseError creates a payload parse error
func ParseError(message string, cause error) *ContextError {
	return New(ErrParse, message, cause)
}

// PayloadError creates a payload read error
func PayloadError(message string, cause error) *ContextError {
	return New(ErrPayload, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *ContextError {
	return New(ErrValidation, message, cause)
}
