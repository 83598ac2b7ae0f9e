package client_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris-alexander-pop/system-design-library/docling"
	"github.com/chris-alexander-pop/system-design-library/docling/client"
	"github.com/chris-alexander-pop/system-design-library/pkg/broker"
	brokeradapter "github.com/chris-alexander-pop/system-design-library/pkg/broker/adapters/memory"
	"github.com/chris-alexander-pop/system-design-library/pkg/objectstore"
	storeadapter "github.com/chris-alexander-pop/system-design-library/pkg/objectstore/adapters/memory"
)

func testConfig() docling.Config {
	return docling.Config{
		SubjectPrefix:  "docling",
		S3Bucket:       "documents",
		CleanupOnError: true,
	}
}

func requestStreamConfig(cfg docling.Config) broker.StreamConfig {
	return broker.StreamConfig{
		Name:      cfg.RequestStreamName(),
		Subjects:  []string{cfg.SubjectPrefix + ".process.>"},
		Retention: broker.RetentionWorkQueue,
	}
}

func resultStreamConfig(cfg docling.Config) broker.StreamConfig {
	return broker.StreamConfig{
		Name:      cfg.ResultStreamName(),
		Subjects:  []string{cfg.SubjectPrefix + ".result.>"},
		Retention: broker.RetentionLimits,
		MaxAge:    time.Hour,
	}
}

func requestConsumerConfig(cfg docling.Config) broker.ConsumerConfig {
	return broker.ConsumerConfig{
		Stream:        cfg.RequestStreamName(),
		FilterSubject: cfg.SubjectPrefix + ".process.>",
	}
}

// runFakeWorker drains n requests off the request stream and replies to
// each with the envelope reply() returns, standing in for docling/worker
// without importing it (avoiding an import cycle in spirit, and keeping
// this suite focused on the client's half of the protocol).
func runFakeWorker(t *testing.T, ctx context.Context, b *brokeradapter.Broker, cfg docling.Config, n int, reply func(envelope docling.RequestEnvelope) docling.ReplyEnvelope) {
	t.Helper()

	require.NoError(t, b.EnsureStream(ctx, requestStreamConfig(cfg)))
	consumer, err := b.MakeDurableConsumer(ctx, cfg.RequestStreamName(), "test-worker", requestConsumerConfig(cfg))
	require.NoError(t, err)

	go func() {
		defer consumer.Close()
		for i := 0; i < n; i++ {
			msgs, err := consumer.Fetch(ctx, 1, 3*time.Second)
			if err != nil || len(msgs) == 0 {
				return
			}

			var envelope docling.RequestEnvelope
			if err := json.Unmarshal(msgs[0].Payload, &envelope); err != nil {
				consumer.Nack(ctx, msgs[0])
				continue
			}
			consumer.Ack(ctx, msgs[0])

			r := reply(envelope)
			payload, err := json.Marshal(r)
			if err != nil {
				continue
			}

			_ = b.EnsureStream(ctx, resultStreamConfig(cfg))
			_ = b.Publish(ctx, &broker.Message{
				Subject: cfg.ResultSubjectFor(envelope.RequestID),
				Payload: payload,
			})
		}
	}()
}

func TestSubmitHappyPath(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	b := brokeradapter.New()
	store := storeadapter.New(objectstore.Config{})

	runFakeWorker(t, ctx, b, cfg, 1, func(envelope docling.RequestEnvelope) docling.ReplyEnvelope {
		return docling.ReplyEnvelope{
			RequestID: envelope.RequestID,
			Status:    docling.StatusSuccess,
			Result: &docling.ResultRecord{
				Text:     "hello",
				Markdown: "hello",
				Metadata: docling.ResultMetadata{Pages: 1, Format: "pdf", ProcessedBy: "docling_worker"},
			},
		}
	})

	c := client.New(b, store, cfg)
	result, err := c.Submit(ctx, []byte("%PDF-1.4 fake"), nil, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Text)
	assert.Equal(t, 1, result.Metadata.Pages)
}

func TestSubmitWorkerError(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	b := brokeradapter.New()
	store := storeadapter.New(objectstore.Config{})

	runFakeWorker(t, ctx, b, cfg, 1, func(envelope docling.RequestEnvelope) docling.ReplyEnvelope {
		return docling.ReplyEnvelope{RequestID: envelope.RequestID, Status: docling.StatusError, Error: "parse failure: bad header"}
	})

	c := client.New(b, store, cfg)
	_, err := c.Submit(ctx, []byte("not a pdf"), nil, 2*time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse failure")
}

func TestSubmitTimesOutWithNoWorker(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	b := brokeradapter.New()
	store := storeadapter.New(objectstore.Config{})

	c := client.New(b, store, cfg)
	start := time.Now()
	_, err := c.Submit(ctx, []byte("%PDF-1.4"), nil, 200*time.Millisecond)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestConcurrentSubmitsGetDistinctReplies(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	b := brokeradapter.New()
	store := storeadapter.New(objectstore.Config{})

	const n = 5
	runFakeWorker(t, ctx, b, cfg, n, func(envelope docling.RequestEnvelope) docling.ReplyEnvelope {
		return docling.ReplyEnvelope{
			RequestID: envelope.RequestID,
			Status:    docling.StatusSuccess,
			Result: &docling.ResultRecord{
				Text:     envelope.RequestID,
				Metadata: docling.ResultMetadata{Pages: 1, Format: "pdf", ProcessedBy: "docling_worker"},
			},
		}
	})

	c := client.New(b, store, cfg)

	var wg sync.WaitGroup
	results := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := c.Submit(ctx, []byte("%PDF-1.4"), nil, 3*time.Second)
			errs[i] = err
			if err == nil {
				results[i] = result.Text
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[results[i]], "each concurrent submit should get its own request ID back")
		seen[results[i]] = true
	}
}
