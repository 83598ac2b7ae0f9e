package errors

import (
	"errors"
	"fmt"
)

// Standard error codes used across the system. Packages may define their
// own, more specific codes (see pkg/broker's BROKER_* codes) but
// should fall back to these for generic conditions.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeForbidden       = "FORBIDDEN"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "INTERNAL"
	CodeTimeout         = "TIMEOUT"
	CodeUnavailable     = "UNAVAILABLE"
)

// AppError is the structured error type used throughout the system. It
// carries a stable Code for programmatic handling, a human-readable
// Message, and an optional wrapped cause.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError with the given code, message, and optional cause.
func New(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// Wrap attaches a message to err, preserving its code if it is already an
// AppError, or classifying it as Internal otherwise.
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	var existing *AppError
	if As(err, &existing) {
		return &AppError{Code: existing.Code, Message: message + ": " + existing.Message, Cause: existing.Cause}
	}
	return &AppError{Code: CodeInternal, Message: message, Cause: err}
}

// NotFound creates a CodeNotFound error.
func NotFound(message string, cause error) *AppError {
	return New(CodeNotFound, message, cause)
}

// Forbidden creates a CodeForbidden error.
func Forbidden(message string, cause error) *AppError {
	return New(CodeForbidden, message, cause)
}

// Conflict creates a CodeConflict error.
func Conflict(message string, cause error) *AppError {
	return New(CodeConflict, message, cause)
}

// InvalidArgument creates a CodeInvalidArgument error.
func InvalidArgument(message string, cause error) *AppError {
	return New(CodeInvalidArgument, message, cause)
}

// Internal creates a CodeInternal error.
func Internal(message string, cause error) *AppError {
	return New(CodeInternal, message, cause)
}

// Timeout creates a CodeTimeout error.
func Timeout(message string, cause error) *AppError {
	return New(CodeTimeout, message, cause)
}

// Unavailable creates a CodeUnavailable error.
func Unavailable(message string, cause error) *AppError {
	return New(CodeUnavailable, message, cause)
}

// Is and As re-export the standard library's error-chain helpers so callers
// only need to import this package when working with AppError chains.
func Is(err, target error) bool { return errors.Is(err, target) }
func As(err error, target any) bool { return errors.As(err, target) }
