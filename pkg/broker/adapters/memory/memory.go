// Package memory implements pkg/broker.Broker in process memory, for unit
// tests that exercise the request/reply protocol without a real NATS
// server.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/chris-alexander-pop/system-design-library/pkg/broker"
	"github.com/chris-alexander-pop/system-design-library/pkg/errors"
)

type stream struct {
	cfg broker.StreamConfig
}

// Broker is an in-memory broker.Broker. Messages published to a subject are
// fanned out to every consumer whose filter subject matches, mirroring
// JetStream's subject-filtered pull consumers closely enough for tests:
// each matching consumer gets its own independent copy of the message.
type Broker struct {
	mu        sync.Mutex
	streams   map[string]*stream
	consumers map[string]*consumerState // key: stream+"/"+name
}

// New creates an empty in-memory broker.
func New() *Broker {
	return &Broker{
		streams:   make(map[string]*stream),
		consumers: make(map[string]*consumerState),
	}
}

// EnsureStream creates the named stream if absent. If it already exists,
// it MUST NOT be silently reshaped to match cfg: a config that diverges
// from what's already there is a startup-time error, matching the nats
// adapter's EnsureStream.
func (b *Broker) EnsureStream(ctx context.Context, cfg broker.StreamConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.streams[cfg.Name]; ok {
		if !streamConfigsEqual(existing.cfg, cfg) {
			return broker.ErrStreamConfigMismatch(cfg.Name)
		}
		return nil
	}
	b.streams[cfg.Name] = &stream{cfg: cfg}
	return nil
}

func streamConfigsEqual(got, want broker.StreamConfig) bool {
	if got.Retention != want.Retention || got.MaxAge != want.MaxAge {
		return false
	}
	if len(got.Subjects) != len(want.Subjects) {
		return false
	}
	gotSubjects := make(map[string]bool, len(got.Subjects))
	for _, s := range got.Subjects {
		gotSubjects[s] = true
	}
	for _, s := range want.Subjects {
		if !gotSubjects[s] {
			return false
		}
	}
	return true
}

func (b *Broker) MakeEphemeralConsumer(ctx context.Context, streamName, requestID string, cfg broker.ConsumerConfig) (broker.Consumer, error) {
	return b.makeConsumer(streamName, requestID, cfg)
}

func (b *Broker) MakeDurableConsumer(ctx context.Context, streamName, name string, cfg broker.ConsumerConfig) (broker.Consumer, error) {
	return b.makeConsumer(streamName, name, cfg)
}

func (b *Broker) makeConsumer(streamName, name string, cfg broker.ConsumerConfig) (broker.Consumer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.streams[streamName]; !ok {
		return nil, broker.ErrStreamNotFound(streamName, nil)
	}

	key := streamName + "/" + name
	state, ok := b.consumers[key]
	if !ok {
		state = &consumerState{cfg: cfg, inbox: make(chan *broker.Message, 1024)}
		b.consumers[key] = state
	}
	return &Consumer{state: state}, nil
}

func (b *Broker) DropConsumer(ctx context.Context, streamName, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.consumers, streamName+"/"+name)
	return nil
}

func (b *Broker) Publish(ctx context.Context, msg *broker.Message) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	for _, state := range b.consumers {
		if !subjectMatches(state.cfg.FilterSubject, msg.Subject) {
			continue
		}
		cp := *msg
		select {
		case state.inbox <- &cp:
		default:
			// Inbox full: drop, matching a work-queue stream shedding load.
		}
	}
	return nil
}

func (b *Broker) Close() error {
	return nil
}

func (b *Broker) Healthy(ctx context.Context) bool {
	return true
}

func subjectMatches(filter, subject string) bool {
	if filter == "" {
		return true
	}
	if strings.HasSuffix(filter, ">") {
		return strings.HasPrefix(subject, strings.TrimSuffix(filter, ">"))
	}
	return filter == subject
}

type consumerState struct {
	cfg   broker.ConsumerConfig
	inbox chan *broker.Message
}

// Consumer is an in-memory broker.Consumer.
type Consumer struct {
	state *consumerState
}

func (c *Consumer) Fetch(ctx context.Context, batch int, timeout time.Duration) ([]*broker.Message, error) {
	var out []*broker.Message
	deadline := time.After(timeout)

	for len(out) < batch {
		select {
		case msg := <-c.state.inbox:
			out = append(out, msg)
		case <-deadline:
			return out, nil
		case <-ctx.Done():
			return out, ctx.Err()
		}
	}
	return out, nil
}

func (c *Consumer) Ack(ctx context.Context, msg *broker.Message) error {
	return nil
}

func (c *Consumer) Nack(ctx context.Context, msg *broker.Message) error {
	select {
	case c.state.inbox <- msg:
		return nil
	default:
		return errors.Unavailable("nack redelivery buffer full", nil)
	}
}

func (c *Consumer) Close() error {
	return nil
}
