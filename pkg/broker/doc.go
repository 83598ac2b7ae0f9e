/*
Package broker provides a unified abstraction over pull-based,
acknowledgment-driven message streams.

This package defines the core interfaces for publishing to and pulling from
durable streams, with explicit Ack/Nack, across different stream brokers
(presently NATS JetStream and an in-memory adapter for tests).

# Architecture

The package follows the adapter pattern with decoupled dependencies:
  - Core interfaces are defined here (zero external dependencies)
  - Each adapter lives in its own sub-package (pkg/broker/adapters/{driver})
  - Users import only the adapter they need, pulling only that SDK

# Usage

	import (
	    "github.com/chris-alexander-pop/system-design-library/pkg/broker"
	    "github.com/chris-alexander-pop/system-design-library/pkg/broker/adapters/nats"
	)

	b, err := nats.New(ctx, broker.Config{URL: "nats://localhost:4222"})
	err = b.EnsureStream(ctx, broker.StreamConfig{Name: "requests", Subjects: []string{"requests.>"}})
	err = b.Publish(ctx, &broker.Message{Subject: "requests.process", Payload: body})
*/
package broker
