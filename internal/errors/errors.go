package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeUserInput ErrorType = "user_input"
	ErrorTypeTransport ErrorType = "transport"
	ErrorTypeStatus    ErrorType = "status"
	ErrorTypeMalformed ErrorType = "malformed"
	ErrorTypeTimeout   ErrorType = "timeout"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewUserInputError creates an error for input the user can fix
func NewUserInputError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeUserInput,
		Message: message,
		Cause:   cause,
	}
}

// NewTransportError creates an error for a failed round trip
func NewTransportError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeTransport,
		Message: message,
		Cause:   cause,
	}
}

// NewStatusError creates an error for a non-success HTTP status
func NewStatusError(statusCode int, details string) *AppError {
	return &AppError{
		Type:       ErrorTypeStatus,
		Message:    fmt.Sprintf("conversion service returned status %d", statusCode),
		Details:    details,
		StatusCode: statusCode,
	}
}

// NewMalformedError creates an error for a response that cannot be used
func NewMalformedError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformed,
		Message: message,
		Cause:   cause,
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if the error chain holds an AppError of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode extracts the HTTP status code from an error, 0 if none
func GetStatusCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 0
}

// UserMessage returns a short text suitable for showing next to the form
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	if appErr.Details != "" {
		return appErr.Message + ": " + appErr.Details
	}
	return appErr.Message
}
