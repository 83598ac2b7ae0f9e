package broker

import (
	"context"
	"time"

	"github.com/chris-alexander-pop/system-design-library/pkg/resilience"
)

// ResilientBrokerConfig configures the resilient broker wrapper.
type ResilientBrokerConfig struct {
	// Circuit breaker settings
	CircuitBreakerEnabled   bool          `env:"BROKER_CB_ENABLED" env-default:"true"`
	CircuitBreakerThreshold int64         `env:"BROKER_CB_THRESHOLD" env-default:"5"`
	CircuitBreakerTimeout   time.Duration `env:"BROKER_CB_TIMEOUT" env-default:"30s"`

	// Retry settings
	RetryEnabled     bool          `env:"BROKER_RETRY_ENABLED" env-default:"true"`
	RetryMaxAttempts int           `env:"BROKER_RETRY_MAX" env-default:"3"`
	RetryBackoff     time.Duration `env:"BROKER_RETRY_BACKOFF" env-default:"200ms"`
}

// ResilientBroker wraps a Broker's Publish and EnsureStream calls with
// circuit breaker and retry support. Fetch/Ack/Nack are left untouched: retrying a Fetch would
// just reimplement its own timeout, and retrying an Ack/Nack risks a
// double-acknowledge against the underlying stream.
type ResilientBroker struct {
	broker   Broker
	cb       *resilience.CircuitBreaker
	retryCfg resilience.RetryConfig
}

// NewResilientBroker wraps broker with resilience features.
func NewResilientBroker(broker Broker, cfg ResilientBrokerConfig) *ResilientBroker {
	rb := &ResilientBroker{broker: broker}

	if cfg.CircuitBreakerEnabled {
		rb.cb = resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			Name:             "broker",
			FailureThreshold: cfg.CircuitBreakerThreshold,
			SuccessThreshold: 2,
			Timeout:          cfg.CircuitBreakerTimeout,
		})
	}

	if cfg.RetryEnabled {
		rb.retryCfg = resilience.RetryConfig{
			MaxAttempts:    cfg.RetryMaxAttempts,
			InitialBackoff: cfg.RetryBackoff,
			MaxBackoff:     5 * time.Second,
			Multiplier:     2.0,
		}
	}

	return rb
}

func (rb *ResilientBroker) EnsureStream(ctx context.Context, cfg StreamConfig) error {
	return rb.execute(ctx, func(ctx context.Context) error {
		return rb.broker.EnsureStream(ctx, cfg)
	})
}

func (rb *ResilientBroker) MakeEphemeralConsumer(ctx context.Context, stream, requestID string, cfg ConsumerConfig) (Consumer, error) {
	return rb.broker.MakeEphemeralConsumer(ctx, stream, requestID, cfg)
}

func (rb *ResilientBroker) MakeDurableConsumer(ctx context.Context, stream, name string, cfg ConsumerConfig) (Consumer, error) {
	return rb.broker.MakeDurableConsumer(ctx, stream, name, cfg)
}

func (rb *ResilientBroker) DropConsumer(ctx context.Context, stream, name string) error {
	return rb.broker.DropConsumer(ctx, stream, name)
}

func (rb *ResilientBroker) Publish(ctx context.Context, msg *Message) error {
	return rb.execute(ctx, func(ctx context.Context) error {
		return rb.broker.Publish(ctx, msg)
	})
}

func (rb *ResilientBroker) Close() error {
	return rb.broker.Close()
}

func (rb *ResilientBroker) Healthy(ctx context.Context) bool {
	return rb.broker.Healthy(ctx)
}

func (rb *ResilientBroker) execute(ctx context.Context, fn resilience.Executor) error {
	operation := fn

	if rb.cb != nil {
		cbFn := operation
		operation = func(ctx context.Context) error {
			return rb.cb.Execute(ctx, cbFn)
		}
	}

	if rb.retryCfg.MaxAttempts > 0 {
		return resilience.Retry(ctx, rb.retryCfg, operation)
	}

	return operation(ctx)
}
