// Package nats implements pkg/broker.Broker on NATS JetStream.
package nats

import (
	"context"
	"errors"
	"time"

	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/chris-alexander-pop/system-design-library/pkg/broker"
	appErrors "github.com/chris-alexander-pop/system-design-library/pkg/errors"
)

// Broker implements broker.Broker on a NATS JetStream connection.
type Broker struct {
	conn *natsgo.Conn
	js   jetstream.JetStream
}

// New connects to the NATS server described by cfg and returns a
// JetStream-backed broker.
func New(ctx context.Context, cfg broker.Config) (*Broker, error) {
	opts := []natsgo.Option{
		natsgo.Timeout(cfg.ConnectTimeout),
		natsgo.MaxReconnects(cfg.MaxReconnectAttempts),
	}
	if cfg.Token != "" {
		opts = append(opts, natsgo.Token(cfg.Token))
	}

	conn, err := natsgo.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, broker.ErrConnectionFailed(err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, broker.ErrConnectionFailed(err)
	}

	return &Broker{conn: conn, js: js}, nil
}

// EnsureStream creates the stream described by cfg if it does not exist.
// It MUST NOT reshape an existing stream to match cfg: if a stream by this
// name already exists with a different configuration, that divergence is a
// startup-time error rather than something EnsureStream silently papers
// over.
func (b *Broker) EnsureStream(ctx context.Context, cfg broker.StreamConfig) error {
	retention := jetstream.LimitsPolicy
	if cfg.Retention == broker.RetentionWorkQueue {
		retention = jetstream.WorkQueuePolicy
	}
	wanted := jetstream.StreamConfig{
		Name:      cfg.Name,
		Subjects:  cfg.Subjects,
		Retention: retention,
		MaxAge:    cfg.MaxAge,
	}

	existing, err := b.js.Stream(ctx, cfg.Name)
	if err != nil {
		if !errors.Is(err, jetstream.ErrStreamNotFound) {
			return broker.ErrInvalidConfig("failed to look up stream "+cfg.Name, err)
		}
		if _, err := b.js.CreateStream(ctx, wanted); err != nil {
			return broker.ErrInvalidConfig("failed to create stream "+cfg.Name, err)
		}
		return nil
	}

	info, err := existing.Info(ctx)
	if err != nil {
		return broker.ErrInvalidConfig("failed to read existing stream "+cfg.Name, err)
	}
	if !streamConfigsEqual(info.Config, wanted) {
		return broker.ErrStreamConfigMismatch(cfg.Name)
	}
	return nil
}

func streamConfigsEqual(got, want jetstream.StreamConfig) bool {
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

func (b *Broker) MakeEphemeralConsumer(ctx context.Context, stream, requestID string, cfg broker.ConsumerConfig) (broker.Consumer, error) {
	return b.makeConsumer(ctx, stream, requestID, cfg, false)
}

func (b *Broker) MakeDurableConsumer(ctx context.Context, stream, name string, cfg broker.ConsumerConfig) (broker.Consumer, error) {
	return b.makeConsumer(ctx, stream, name, cfg, true)
}

func (b *Broker) makeConsumer(ctx context.Context, stream, name string, cfg broker.ConsumerConfig, durable bool) (broker.Consumer, error) {
	consumerCfg := jetstream.ConsumerConfig{
		AckPolicy:     jetstream.AckExplicitPolicy,
		FilterSubject: cfg.FilterSubject,
		AckWait:       cfg.AckWait,
		MaxDeliver:    cfg.MaxDeliver,
	}
	if durable {
		consumerCfg.Durable = name
	} else {
		consumerCfg.Name = name
		consumerCfg.InactiveThreshold = 5 * time.Minute
	}

	str, err := b.js.Stream(ctx, stream)
	if err != nil {
		return nil, broker.ErrStreamNotFound(stream, err)
	}

	cons, err := str.CreateOrUpdateConsumer(ctx, consumerCfg)
	if err != nil {
		return nil, appErrors.Unavailable("failed to create consumer "+name, err)
	}

	return &Consumer{cons: cons}, nil
}

func (b *Broker) DropConsumer(ctx context.Context, stream, name string) error {
	str, err := b.js.Stream(ctx, stream)
	if err != nil {
		if errors.Is(err, jetstream.ErrStreamNotFound) {
			return nil
		}
		return broker.ErrStreamNotFound(stream, err)
	}

	if err := str.DeleteConsumer(ctx, name); err != nil {
		if errors.Is(err, jetstream.ErrConsumerNotFound) {
			return nil
		}
		return appErrors.Unavailable("failed to delete consumer "+name, err)
	}
	return nil
}

func (b *Broker) Publish(ctx context.Context, msg *broker.Message) error {
	header := natsgo.Header{}
	for k, v := range msg.Headers {
		header.Set(k, v)
	}

	_, err := b.js.PublishMsg(ctx, &natsgo.Msg{
		Subject: msg.Subject,
		Data:    msg.Payload,
		Header:  header,
	})
	if err != nil {
		return broker.ErrPublishFailed(err)
	}
	return nil
}

func (b *Broker) Close() error {
	b.conn.Close()
	return nil
}

func (b *Broker) Healthy(ctx context.Context) bool {
	return b.conn.IsConnected()
}

// Consumer implements broker.Consumer on a JetStream pull consumer.
type Consumer struct {
	cons jetstream.Consumer
}

func (c *Consumer) Fetch(ctx context.Context, batch int, timeout time.Duration) ([]*broker.Message, error) {
	msgs, err := c.cons.Fetch(batch, jetstream.FetchMaxWait(timeout))
	if err != nil {
		return nil, broker.ErrFetchFailed(err)
	}

	var out []*broker.Message
	for m := range msgs.Messages() {
		meta, _ := m.Metadata()
		deliveries := 0
		created := time.Now()
		if meta != nil {
			deliveries = int(meta.NumDelivered)
			created = meta.Timestamp
		}

		headers := make(map[string]string, len(m.Headers()))
		for k := range m.Headers() {
			headers[k] = m.Headers().Get(k)
		}

		out = append(out, &broker.Message{
			Subject:       m.Subject(),
			Payload:       m.Data(),
			Headers:       headers,
			Timestamp:     created,
			DeliveryCount: deliveries,
			Raw:           m,
		})
	}
	if err := msgs.Error(); err != nil && len(out) == 0 {
		if errors.Is(err, natsgo.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return nil, nil
		}
		return nil, broker.ErrFetchFailed(err)
	}
	return out, nil
}

func (c *Consumer) Ack(ctx context.Context, msg *broker.Message) error {
	raw, ok := msg.Raw.(jetstream.Msg)
	if !ok {
		return broker.ErrAckFailed(appErrors.Internal("message has no jetstream handle", nil))
	}
	if err := raw.Ack(); err != nil {
		return broker.ErrAckFailed(err)
	}
	return nil
}

func (c *Consumer) Nack(ctx context.Context, msg *broker.Message) error {
	raw, ok := msg.Raw.(jetstream.Msg)
	if !ok {
		return broker.ErrNackFailed(appErrors.Internal("message has no jetstream handle", nil))
	}
	if err := raw.Nak(); err != nil {
		return broker.ErrNackFailed(err)
	}
	return nil
}

func (c *Consumer) Close() error {
	return nil
}
