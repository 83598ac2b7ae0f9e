package objectstore

import "github.com/chris-alexander-pop/system-design-library/pkg/errors"

// Error codes for object store operations. CodeTransient marks a failure
// that exhausted its retry budget but is still expected to succeed on a
// later attempt (throttling, connection resets, 5xx responses); CodeFatal
// marks one retrying cannot fix (missing object, access denied).
const (
	CodeTransient = "OBJECTSTORE_TRANSIENT"
	CodeFatal     = "OBJECTSTORE_FATAL"
)

// ErrTransient creates an error for an object store operation that failed
// after exhausting its retries on a transient condition.
func ErrTransient(message string, cause error) *errors.AppError {
	return errors.New(CodeTransient, message, cause)
}

// ErrFatal creates an error for an object store operation that failed in a
// way retrying cannot fix.
func ErrFatal(message string, cause error) *errors.AppError {
	return errors.New(CodeFatal, message, cause)
}

// IsTransient reports whether err is (or wraps) an AppError produced by
// ErrTransient, so callers can distinguish a retry-exhausted failure from a
// fatal one without depending on adapter internals.
func IsTransient(err error) bool {
	var appErr *errors.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == CodeTransient
}
