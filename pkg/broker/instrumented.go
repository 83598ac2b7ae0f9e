package broker

import (
	"context"
	"time"

	"github.com/chris-alexander-pop/system-design-library/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedBroker wraps a Broker with logging and tracing.
type InstrumentedBroker struct {
	next   Broker
	tracer trace.Tracer
}

// NewInstrumentedBroker creates a new InstrumentedBroker wrapping next.
func NewInstrumentedBroker(next Broker) *InstrumentedBroker {
	return &InstrumentedBroker{next: next, tracer: otel.Tracer("pkg/broker")}
}

func (b *InstrumentedBroker) EnsureStream(ctx context.Context, cfg StreamConfig) error {
	logger.L().InfoContext(ctx, "ensuring stream", "stream", cfg.Name)
	err := b.next.EnsureStream(ctx, cfg)
	if err != nil {
		logger.L().ErrorContext(ctx, "failed to ensure stream", "stream", cfg.Name, "error", err)
	}
	return err
}

func (b *InstrumentedBroker) MakeEphemeralConsumer(ctx context.Context, stream, requestID string, cfg ConsumerConfig) (Consumer, error) {
	c, err := b.next.MakeEphemeralConsumer(ctx, stream, requestID, cfg)
	if err != nil {
		logger.L().ErrorContext(ctx, "failed to create ephemeral consumer", "stream", stream, "request_id", requestID, "error", err)
		return nil, err
	}
	return &instrumentedConsumer{next: c, stream: stream, name: requestID, tracer: b.tracer}, nil
}

func (b *InstrumentedBroker) MakeDurableConsumer(ctx context.Context, stream, name string, cfg ConsumerConfig) (Consumer, error) {
	c, err := b.next.MakeDurableConsumer(ctx, stream, name, cfg)
	if err != nil {
		logger.L().ErrorContext(ctx, "failed to create durable consumer", "stream", stream, "name", name, "error", err)
		return nil, err
	}
	return &instrumentedConsumer{next: c, stream: stream, name: name, tracer: b.tracer}, nil
}

func (b *InstrumentedBroker) DropConsumer(ctx context.Context, stream, name string) error {
	err := b.next.DropConsumer(ctx, stream, name)
	if err != nil {
		logger.L().WarnContext(ctx, "failed to drop consumer", "stream", stream, "name", name, "error", err)
	}
	return err
}

func (b *InstrumentedBroker) Publish(ctx context.Context, msg *Message) error {
	ctx, span := b.tracer.Start(ctx, "broker.Publish", trace.WithAttributes(
		attribute.String("broker.subject", msg.Subject),
	))
	defer span.End()

	logger.L().InfoContext(ctx, "publishing message", "subject", msg.Subject)

	err := b.next.Publish(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.L().ErrorContext(ctx, "failed to publish message", "subject", msg.Subject, "error", err)
		return err
	}

	span.SetStatus(codes.Ok, "message published")
	return nil
}

func (b *InstrumentedBroker) Close() error {
	logger.L().Info("closing broker")
	return b.next.Close()
}

func (b *InstrumentedBroker) Healthy(ctx context.Context) bool {
	return b.next.Healthy(ctx)
}

// instrumentedConsumer wraps a Consumer with logging and tracing.
type instrumentedConsumer struct {
	next   Consumer
	stream string
	name   string
	tracer trace.Tracer
}

func (c *instrumentedConsumer) Fetch(ctx context.Context, batch int, timeout time.Duration) ([]*Message, error) {
	ctx, span := c.tracer.Start(ctx, "broker.Fetch", trace.WithAttributes(
		attribute.String("broker.stream", c.stream),
		attribute.String("broker.consumer", c.name),
		attribute.Int("broker.batch", batch),
	))
	defer span.End()

	msgs, err := c.next.Fetch(ctx, batch, timeout)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.L().ErrorContext(ctx, "failed to fetch messages", "stream", c.stream, "consumer", c.name, "error", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("broker.fetched", len(msgs)))
	return msgs, nil
}

func (c *instrumentedConsumer) Ack(ctx context.Context, msg *Message) error {
	err := c.next.Ack(ctx, msg)
	if err != nil {
		logger.L().ErrorContext(ctx, "failed to ack message", "stream", c.stream, "subject", msg.Subject, "error", err)
	}
	return err
}

func (c *instrumentedConsumer) Nack(ctx context.Context, msg *Message) error {
	err := c.next.Nack(ctx, msg)
	if err != nil {
		logger.L().ErrorContext(ctx, "failed to nack message", "stream", c.stream, "subject", msg.Subject, "error", err)
	}
	return err
}

func (c *instrumentedConsumer) Close() error {
	return c.next.Close()
}
