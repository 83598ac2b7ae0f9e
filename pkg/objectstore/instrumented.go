package objectstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/chris-alexander-pop/system-design-library/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedStore wraps a Store with logging and tracing.
type InstrumentedStore struct {
	next Store
	name string
}

// NewInstrumentedStore creates a new decorator around store.
func NewInstrumentedStore(store Store, name string) *InstrumentedStore {
	return &InstrumentedStore{next: store, name: name}
}

func (s *InstrumentedStore) EnsureBucket(ctx context.Context, bucket string) error {
	ctx, span := s.startSpan(ctx, "EnsureBucket")
	defer span.End()
	span.SetAttributes(attribute.String("objectstore.bucket", bucket))

	err := s.next.EnsureBucket(ctx, bucket)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.L().ErrorContext(ctx, "failed to ensure bucket", "bucket", bucket, "error", err)
		return err
	}
	return nil
}

func (s *InstrumentedStore) Put(ctx context.Context, bucket, key string, data io.Reader, size int64) error {
	ctx, span := s.startSpan(ctx, "Put")
	defer span.End()
	span.SetAttributes(attribute.String("objectstore.bucket", bucket), attribute.String("objectstore.key", key))

	logger.L().InfoContext(ctx, "uploading object", "bucket", bucket, "key", key, "size", size)

	start := time.Now()
	err := s.next.Put(ctx, bucket, key, data, size)
	duration := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.L().ErrorContext(ctx, "failed to upload object", "bucket", bucket, "key", key, "error", err, "duration", duration)
		return err
	}

	logger.L().InfoContext(ctx, "uploaded object", "bucket", bucket, "key", key, "duration", duration)
	return nil
}

func (s *InstrumentedStore) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	ctx, span := s.startSpan(ctx, "Get")
	defer span.End()
	span.SetAttributes(attribute.String("objectstore.bucket", bucket), attribute.String("objectstore.key", key))

	logger.L().DebugContext(ctx, "downloading object", "bucket", bucket, "key", key)

	rc, err := s.next.Get(ctx, bucket, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.L().ErrorContext(ctx, "failed to download object", "bucket", bucket, "key", key, "error", err)
		return nil, err
	}
	return rc, nil
}

func (s *InstrumentedStore) Delete(ctx context.Context, bucket, key string) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()
	span.SetAttributes(attribute.String("objectstore.bucket", bucket), attribute.String("objectstore.key", key))

	logger.L().InfoContext(ctx, "deleting object", "bucket", bucket, "key", key)

	err := s.next.Delete(ctx, bucket, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.L().ErrorContext(ctx, "failed to delete object", "bucket", bucket, "key", key, "error", err)
		return err
	}
	return nil
}

func (s *InstrumentedStore) PresignGet(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	ctx, span := s.startSpan(ctx, "PresignGet")
	defer span.End()
	span.SetAttributes(attribute.String("objectstore.bucket", bucket), attribute.String("objectstore.key", key))

	url, err := s.next.PresignGet(ctx, bucket, key, ttl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.L().ErrorContext(ctx, "failed to presign object", "bucket", bucket, "key", key, "error", err)
		return "", err
	}
	return url, nil
}

func (s *InstrumentedStore) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	tracer := otel.Tracer("pkg/objectstore")
	return tracer.Start(ctx, fmt.Sprintf("%s.%s", s.name, op))
}
