// Package apperrors defines the coded error type shared by services,
// repositories and HTTP handlers.
package apperrors

import "errors"

// Error is an application error carrying a classification code.
type Error struct {
	Code    Code   // Machine-readable classification
	Message string // Client-safe message
	Cause   error  // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates an error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinels for errors.Is comparisons by code.
var (
	ErrValidation      = New(CodeValidation, "validation failed")
	ErrUnauthenticated = New(CodeUnauthenticated, "authentication required")
	ErrForbidden       = New(CodeForbidden, "insufficient permissions")
	ErrNotFound        = New(CodeNotFound, "resource not found")
	ErrConflict        = New(CodeConflict, "resource already exists")
	ErrUnavailable     = New(CodeUnavailable, "database unavailable")
)

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// MessageOf returns the client-safe message of the first *Error in err's chain.
// Errors without a code never leak their text.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// Validation is shorthand for New(CodeValidation, message).
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// NotFound is shorthand for New(CodeNotFound, message).
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}
