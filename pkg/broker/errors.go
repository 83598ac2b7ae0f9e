package broker

import "github.com/chris-alexander-pop/system-design-library/pkg/errors"

// Error codes for broker operations.
const (
	CodeConnectionFailed = "BROKER_CONN_FAILED"
	CodeStreamNotFound   = "BROKER_STREAM_NOT_FOUND"
	CodePublishFailed    = "BROKER_PUBLISH_FAILED"
	CodeFetchFailed      = "BROKER_FETCH_FAILED"
	CodeTimeout          = "BROKER_TIMEOUT"
	CodeClosed           = "BROKER_CLOSED"
	CodeInvalidConfig    = "BROKER_INVALID_CONFIG"
	CodeAckFailed            = "BROKER_ACK_FAILED"
	CodeNackFailed           = "BROKER_NACK_FAILED"
	CodeConsumerNotFound     = "BROKER_CONSUMER_NOT_FOUND"
	CodeConsumerExists       = "BROKER_CONSUMER_EXISTS"
	CodeStreamConfigMismatch = "BROKER_STREAM_CONFIG_MISMATCH"
)

// ErrConnectionFailed creates an error for broker connection failures.
func ErrConnectionFailed(err error) *errors.AppError {
	return errors.New(CodeConnectionFailed, "failed to connect to message broker", err)
}

// ErrStreamNotFound creates an error for a missing stream.
func ErrStreamNotFound(stream string, err error) *errors.AppError {
	return errors.New(CodeStreamNotFound, "stream not found: "+stream, err)
}

// ErrPublishFailed creates an error for publish failures.
func ErrPublishFailed(err error) *errors.AppError {
	return errors.New(CodePublishFailed, "failed to publish message", err)
}

// ErrFetchFailed creates an error for fetch failures.
func ErrFetchFailed(err error) *errors.AppError {
	return errors.New(CodeFetchFailed, "failed to fetch messages", err)
}

// ErrTimeout creates an error for operation timeouts.
func ErrTimeout(operation string, err error) *errors.AppError {
	return errors.New(CodeTimeout, "broker operation timed out: "+operation, err)
}

// ErrClosed creates an error for closed connections.
func ErrClosed(err error) *errors.AppError {
	return errors.New(CodeClosed, "broker connection is closed", err)
}

// ErrInvalidConfig creates an error for invalid configuration.
func ErrInvalidConfig(msg string, err error) *errors.AppError {
	return errors.New(CodeInvalidConfig, "invalid broker configuration: "+msg, err)
}

// ErrAckFailed creates an error for acknowledgment failures.
func ErrAckFailed(err error) *errors.AppError {
	return errors.New(CodeAckFailed, "failed to acknowledge message", err)
}

// ErrNackFailed creates an error for negative acknowledgment failures.
func ErrNackFailed(err error) *errors.AppError {
	return errors.New(CodeNackFailed, "failed to nack message", err)
}

// ErrConsumerNotFound creates an error for a missing consumer.
func ErrConsumerNotFound(name string, err error) *errors.AppError {
	return errors.New(CodeConsumerNotFound, "consumer not found: "+name, err)
}

// ErrConsumerExists creates an error for a consumer name collision.
func ErrConsumerExists(name string, err error) *errors.AppError {
	return errors.New(CodeConsumerExists, "consumer already exists: "+name, err)
}

// ErrStreamConfigMismatch creates an error for EnsureStream being asked to
// reconcile an existing stream whose configuration differs from the one
// requested. EnsureStream must not silently reshape an existing stream, so
// this is surfaced as a startup-time error instead.
func ErrStreamConfigMismatch(stream string) *errors.AppError {
	return errors.New(CodeStreamConfigMismatch, "existing stream "+stream+" has a configuration that differs from the requested one", nil)
}
