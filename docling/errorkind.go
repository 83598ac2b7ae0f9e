package docling

// ErrorKind classifies a failure for client consumption. Kinds are a
// taxonomy, not a type hierarchy: they are carried inside
// pkg/errors.AppError.Code so callers can recover them with errors.As
// without importing this package's concrete error types.
type ErrorKind string

const (
	// KindTimeout means the client's wait for a reply exceeded its
	// deadline. Not retried automatically; the caller decides.
	KindTimeout ErrorKind = "TIMEOUT"

	// KindBackpressure means a publish was refused by the broker (e.g. a
	// work queue stream rejecting overflow). Surfaced immediately; never
	// retried by the core.
	KindBackpressure ErrorKind = "BACKPRESSURE"

	// KindObjectStoreTransient means an object-store operation failed in
	// a way expected to succeed on retry (throttling, connection reset).
	// Retried internally with bounded backoff; only surfaced with this kind
	// after the final attempt.
	KindObjectStoreTransient ErrorKind = "OBJECTSTORE_TRANSIENT"

	// KindObjectStoreFatal means an object-store operation failed in a way
	// retrying cannot fix (not found, forbidden). Surfaced immediately.
	KindObjectStoreFatal ErrorKind = "OBJECTSTORE_FATAL"

	// KindEnvelopeInvalid means a worker could not decode or validate a
	// request envelope. The worker nacks and discards the message locally.
	KindEnvelopeInvalid ErrorKind = "ENVELOPE_INVALID"

	// KindEngineError means the conversion engine itself failed
	// deterministically on the input. The worker acks after publishing the
	// error reply, since redelivery would not change the outcome.
	KindEngineError ErrorKind = "ENGINE_ERROR"

	// KindInternalFault means a worker failed to publish its reply at all.
	// Reported to the client as KindTimeout since no reply will ever
	// arrive on that subject; the worker nacks so another instance can
	// retry the request.
	KindInternalFault ErrorKind = "INTERNAL_FAULT"
)
