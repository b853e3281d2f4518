package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Widget lifecycle errors
	ErrCodeAlreadyRendered ErrorCode = "ALREADY_RENDERED"

	// Event dispatch errors
	ErrCodeHandlerPanic ErrorCode = "HANDLER_PANIC"

	// DOM errors
	ErrCodeElementNotFound ErrorCode = "ELEMENT_NOT_FOUND"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// NavbarError represents a structured error with context
type NavbarError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *NavbarError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NavbarError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *NavbarError) WithDetail(key string, value interface{}) *NavbarError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *NavbarError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new NavbarError
func New(code ErrorCode, message string) *NavbarError {
	return &NavbarError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a NavbarError
func Wrap(err error, code ErrorCode, message string) *NavbarError {
	return &NavbarError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific NavbarError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	navErr, ok := err.(*NavbarError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return navErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	navErr, ok := err.(*NavbarError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return navErr.Code
}
