// Package client implements the correlation protocol a caller uses to have
// a document converted by a worker pool: upload the document, publish a
// lightweight request envelope naming it, wait on a per-request reply
// subject, and tear everything down regardless of outcome.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/chris-alexander-pop/system-design-library/docling"
	"github.com/chris-alexander-pop/system-design-library/pkg/broker"
	"github.com/chris-alexander-pop/system-design-library/pkg/errors"
	"github.com/chris-alexander-pop/system-design-library/pkg/logger"
	"github.com/chris-alexander-pop/system-design-library/pkg/objectstore"
)

// DefaultTimeout is the wall-clock budget a Submit call waits for a reply
// before producing a Timeout error, matching the source protocol's default.
const DefaultTimeout = 600 * time.Second

// Client submits documents for conversion and waits for the result.
type Client struct {
	broker  broker.Broker
	store   objectStore
	cfg     docling.Config
}

// objectStore is the subset of pkg/objectstore.Store the client needs; kept
// narrow so tests can supply a minimal fake without pulling in the full
// interface.
type objectStore interface {
	EnsureBucket(ctx context.Context, bucket string) error
	Put(ctx context.Context, bucket, key string, data io.Reader, size int64) error
	Delete(ctx context.Context, bucket, key string) error
}

// New creates a Client over the given broker and object store.
func New(b broker.Broker, store objectStore, cfg docling.Config) *Client {
	return &Client{broker: b, store: store, cfg: cfg}
}

// Submit uploads source as a new document, dispatches it for conversion,
// and waits up to timeout for the worker's reply. It is safe to call
// concurrently: every call gets its own request ID, ephemeral consumer, and
// object key.
//
// timeout of zero uses DefaultTimeout.
func (c *Client) Submit(ctx context.Context, source []byte, rawOptions json.RawMessage, timeout time.Duration) (*docling.ResultRecord, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	requestID := uuid.NewString()
	bucket := c.cfg.S3Bucket
	s3Key := "raw/" + requestID + ".pdf"

	logger.L().InfoContext(ctx, "submitting document", "request_id", requestID, "bucket", bucket, "key", s3Key)

	// start -> UPLOADED
	if err := c.store.EnsureBucket(ctx, bucket); err != nil {
		return nil, errors.Wrap(err, "failed to ensure bucket")
	}
	if err := c.store.Put(ctx, bucket, s3Key, bytes.NewReader(source), int64(len(source))); err != nil {
		kind := docling.KindObjectStoreFatal
		if objectstore.IsTransient(err) {
			kind = docling.KindObjectStoreTransient
		}
		return nil, errors.New(string(kind), "failed to upload document", err)
	}

	result, err := c.runProtocol(ctx, requestID, bucket, s3Key, rawOptions, timeout)

	// any -> CLEANED
	if err != nil && c.cfg.CleanupOnError {
		if delErr := c.store.Delete(ctx, bucket, s3Key); delErr != nil {
			logger.L().WarnContext(ctx, "failed to clean up payload object after error", "request_id", requestID, "error", delErr)
		}
	}

	return result, err
}

func (c *Client) runProtocol(ctx context.Context, requestID, bucket, s3Key string, rawOptions json.RawMessage, timeout time.Duration) (*docling.ResultRecord, error) {
	resultStream := c.cfg.ResultStreamName()

	// UPLOADED -> SUBSCRIBED
	if err := c.broker.EnsureStream(ctx, broker.StreamConfig{
		Name:      resultStream,
		Subjects:  []string{c.cfg.SubjectPrefix + ".result.>"},
		Retention: broker.RetentionLimits,
		MaxAge:    time.Hour,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to ensure result stream")
	}

	consumer, err := c.broker.MakeEphemeralConsumer(ctx, resultStream, requestID, broker.ConsumerConfig{
		Stream:        resultStream,
		FilterSubject: c.cfg.ResultSubjectFor(requestID),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ephemeral consumer")
	}
	defer func() {
		consumer.Close()
		if dropErr := c.broker.DropConsumer(context.Background(), resultStream, requestID); dropErr != nil {
			logger.L().WarnContext(ctx, "failed to drop ephemeral consumer", "request_id", requestID, "error", dropErr)
		}
	}()

	// SUBSCRIBED -> PUBLISHED
	envelope := docling.RequestEnvelope{
		RequestID:      requestID,
		S3Key:          s3Key,
		Bucket:         bucket,
		DoclingOptions: rawOptions,
		Timestamp:      time.Now(),
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil, errors.Internal("failed to encode request envelope", err)
	}

	if err := c.broker.Publish(ctx, &broker.Message{
		Subject: c.cfg.ProcessSubjectFor(requestID),
		Payload: payload,
	}); err != nil {
		return nil, errors.New(string(docling.KindBackpressure), "failed to publish request", err)
	}

	// PUBLISHED -> REPLY | TIMEOUT
	return c.waitForReply(ctx, consumer, requestID, timeout)
}

func (c *Client) waitForReply(ctx context.Context, consumer broker.Consumer, requestID string, timeout time.Duration) (*docling.ResultRecord, error) {
	deadline := time.Now().Add(timeout)

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, errors.New(string(docling.KindTimeout), "timed out waiting for reply", nil)
		}

		msgs, err := consumer.Fetch(ctx, 1, remaining)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch reply")
		}
		if len(msgs) == 0 {
			return nil, errors.New(string(docling.KindTimeout), "timed out waiting for reply", nil)
		}

		msg := msgs[0]
		if err := consumer.Ack(ctx, msg); err != nil {
			logger.L().WarnContext(ctx, "failed to ack reply message", "request_id", requestID, "error", err)
		}

		var reply docling.ReplyEnvelope
		if err := json.Unmarshal(msg.Payload, &reply); err != nil {
			return nil, errors.New(string(docling.KindEnvelopeInvalid), "worker reply was not valid JSON", err)
		}

		if reply.RequestID != requestID {
			// Should not happen given the per-request filter subject, but
			// guard against a misrouted message rather than return it.
			logger.L().WarnContext(ctx, "discarding reply for unexpected request", "expected", requestID, "got", reply.RequestID)
			continue
		}

		if reply.Status == docling.StatusError {
			return nil, errors.New(string(docling.KindEngineError), reply.Error, nil)
		}
		if reply.Result == nil {
			return nil, errors.New(string(docling.KindEnvelopeInvalid), "success reply missing result", nil)
		}
		return reply.Result, nil
	}
}
