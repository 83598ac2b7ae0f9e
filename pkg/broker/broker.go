// Package broker provides a unified abstraction over pull-based,
// acknowledgment-driven message streams.
//
// This package is shaped around JetStream-style semantics: durable streams, pull
// subscriptions that a caller fetches from explicitly, and per-message
// Ack/Nack. That shape is what a request/reply coordination service needs:
// an ephemeral, per-request consumer for a single reply, and a durable,
// shared consumer across a pool of worker processes.
//
// # Architecture
//
// The package follows the adapter pattern:
//   - Core interfaces are defined here (zero external dependencies)
//   - Each adapter lives in its own sub-package (pkg/broker/adapters/{driver})
//   - Users import only the adapter they need, pulling only that SDK
//
// # Usage
//
//	import (
//	    "github.com/chris-alexander-pop/system-design-library/pkg/broker"
//	    "github.com/chris-alexander-pop/system-design-library/pkg/broker/adapters/nats"
//	)
//
//	b, err := nats.New(ctx, broker.Config{URL: "nats://localhost:4222"})
//	err = b.EnsureStream(ctx, broker.StreamConfig{Name: "requests", Subjects: []string{"requests.>"}})
//	err = b.Publish(ctx, &broker.Message{Subject: "requests.process", Payload: body})
package broker

import (
	"context"
	"time"
)

// Message is a single unit on a stream, either about to be published or
// received from a Fetch call.
type Message struct {
	// Subject is the destination (on publish) or origin (on fetch) subject.
	Subject string

	// Payload is the message body.
	Payload []byte

	// Headers are optional key-value pairs for metadata.
	Headers map[string]string

	// Timestamp is when the message was created. If zero on publish,
	// adapters should fill in the current time.
	Timestamp time.Time

	// DeliveryCount is how many times this message has been (re)delivered.
	DeliveryCount int

	// Raw carries the adapter-specific message handle needed to Ack/Nack,
	// opaque to callers.
	Raw interface{}
}

// RetentionPolicy controls how long a stream keeps messages around.
type RetentionPolicy string

const (
	// RetentionWorkQueue discards a message as soon as some consumer acks
	// it. Appropriate for the request stream, where exactly one worker
	// should ever process a given request.
	RetentionWorkQueue RetentionPolicy = "workqueue"

	// RetentionLimits keeps messages until a size/age/count limit is hit,
	// regardless of acknowledgment. Appropriate for the results stream,
	// where a reply should outlive a slow or momentarily absent client.
	RetentionLimits RetentionPolicy = "limits"
)

// StreamConfig describes a durable stream to create or ensure exists.
type StreamConfig struct {
	// Name identifies the stream.
	Name string

	// Subjects lists the subject patterns the stream captures.
	Subjects []string

	// Retention controls when messages are discarded.
	Retention RetentionPolicy

	// MaxAge discards messages older than this, regardless of ack state.
	// Zero means no age limit.
	MaxAge time.Duration
}

// ConsumerConfig describes a consumer bound to a stream.
type ConsumerConfig struct {
	// Stream is the stream the consumer pulls from.
	Stream string

	// FilterSubject restricts delivery to a single subject, used to scope
	// an ephemeral consumer to exactly one request's reply subject.
	FilterSubject string

	// AckWait is how long a fetched-but-unacked message stays invisible to
	// other fetchers before it is redelivered.
	AckWait time.Duration

	// MaxDeliver caps how many times a message is redelivered before it is
	// considered permanently failed. Zero means unlimited.
	MaxDeliver int
}

// Broker manages connections to a message stream and creates the
// publish/fetch primitives the coordination protocol needs.
type Broker interface {
	// EnsureStream creates the stream described by cfg if it does not
	// already exist. Safe to call repeatedly.
	EnsureStream(ctx context.Context, cfg StreamConfig) error

	// MakeEphemeralConsumer creates a consumer scoped to a single request,
	// named after requestID so a client's own fetch call can find it.
	// Callers must DropConsumer when done, success or failure, since
	// ephemeral consumers are not cleaned up automatically by every
	// adapter (in particular the in-memory one).
	MakeEphemeralConsumer(ctx context.Context, stream, requestID string, cfg ConsumerConfig) (Consumer, error)

	// MakeDurableConsumer creates or attaches to a durable consumer shared
	// by every worker process in name's competing-consumer group.
	MakeDurableConsumer(ctx context.Context, stream, name string, cfg ConsumerConfig) (Consumer, error)

	// DropConsumer removes a consumer definition from the broker. It is a
	// no-op if the consumer no longer exists.
	DropConsumer(ctx context.Context, stream, name string) error

	// Publish sends a single message.
	Publish(ctx context.Context, msg *Message) error

	// Close releases resources associated with the broker.
	Close() error

	// Healthy returns true if the broker connection is healthy.
	Healthy(ctx context.Context) bool
}

// Consumer pulls messages from a stream on demand. Nothing here blocks on a
// handler callback: the caller decides
// when to fetch and explicitly acknowledges each message it receives.
type Consumer interface {
	// Fetch blocks until up to batch messages are available or timeout
	// elapses, returning whatever arrived (which may be fewer than batch,
	// including zero on timeout).
	Fetch(ctx context.Context, batch int, timeout time.Duration) ([]*Message, error)

	// Ack acknowledges successful processing of msg, permanently removing
	// it from redelivery.
	Ack(ctx context.Context, msg *Message) error

	// Nack signals that msg was not processed successfully, making it
	// eligible for redelivery subject to the consumer's MaxDeliver.
	Nack(ctx context.Context, msg *Message) error

	// Close releases resources associated with the consumer. It does not
	// delete the consumer definition from the broker; use
	// Broker.DropConsumer for that.
	Close() error
}
