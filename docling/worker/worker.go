// Package worker implements the dispatch loop that pulls requests off the
// shared request stream, converts the named document, and replies on the
// requester's per-request reply subject.
package worker

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/chris-alexander-pop/system-design-library/docling"
	"github.com/chris-alexander-pop/system-design-library/docling/options"
	"github.com/chris-alexander-pop/system-design-library/pkg/broker"
	"github.com/chris-alexander-pop/system-design-library/pkg/logger"
)

// Engine converts a document's raw bytes into a ResultRecord according to
// cfg. Implementations are expected to honor cfg.DocumentTimeout via ctx's
// deadline.
type Engine interface {
	Convert(ctx context.Context, doc []byte, cfg *docling.EngineConfig) (*docling.ResultRecord, error)
}

// objectStore is the subset of pkg/objectstore.Store the worker needs.
type objectStore interface {
	Get(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

// Worker runs the dispatch loop against a durable, shared consumer.
type Worker struct {
	broker  broker.Broker
	store   objectStore
	engine  Engine
	cfg     docling.Config
}

// New creates a Worker. engine performs the actual conversion; pass
// NewReferenceEngine for a dependency-free default.
func New(b broker.Broker, store objectStore, engine Engine, cfg docling.Config) *Worker {
	return &Worker{broker: b, store: store, engine: engine, cfg: cfg}
}

// Run provisions the request stream and durable consumer, then runs
// cfg.NumWorkers fetch loops concurrently until ctx is canceled. It returns
// once every loop has exited.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.broker.EnsureStream(ctx, broker.StreamConfig{
		Name:      w.cfg.RequestStreamName(),
		Subjects:  []string{w.cfg.SubjectPrefix + ".process.>"},
		Retention: broker.RetentionWorkQueue,
	}); err != nil {
		return err
	}

	consumer, err := w.broker.MakeDurableConsumer(ctx, w.cfg.RequestStreamName(), w.cfg.WorkerConsumerName, broker.ConsumerConfig{
		Stream:        w.cfg.RequestStreamName(),
		FilterSubject: w.cfg.SubjectPrefix + ".process.>",
		AckWait:       w.cfg.AckWait,
		MaxDeliver:    w.cfg.MaxDeliver,
	})
	if err != nil {
		return err
	}
	defer consumer.Close()

	numWorkers := w.cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			w.loop(ctx, consumer)
		}()
	}
	wg.Wait()
	return nil
}

func (w *Worker) loop(ctx context.Context, consumer broker.Consumer) {
	batch := w.cfg.FetchBatch
	if batch <= 0 {
		batch = 1
	}
	fetchTimeout := w.cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}

	for {
		if ctx.Err() != nil {
			return
		}

		msgs, err := consumer.Fetch(ctx, batch, fetchTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.L().ErrorContext(ctx, "fetch failed", "error", err)
			continue
		}

		for _, msg := range msgs {
			w.handle(ctx, consumer, msg)
		}
	}
}

// handle processes a single request message, recovering from any panic in
// the engine so one bad document never brings down the fetch loop.
func (w *Worker) handle(ctx context.Context, consumer broker.Consumer, msg *broker.Message) {
	defer func() {
		if r := recover(); r != nil {
			logger.L().ErrorContext(ctx, "recovered from panic while handling request", "panic", r)
			if err := consumer.Nack(ctx, msg); err != nil {
				logger.L().ErrorContext(ctx, "failed to nack after panic", "error", err)
			}
		}
	}()

	var envelope docling.RequestEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		logger.L().WarnContext(ctx, "discarding undecodable request envelope", "error", err)
		if err := consumer.Nack(ctx, msg); err != nil {
			logger.L().ErrorContext(ctx, "failed to nack undecodable envelope", "error", err)
		}
		return
	}

	logger.L().InfoContext(ctx, "processing request", "request_id", envelope.RequestID)

	reply := w.convert(ctx, envelope)

	if err := w.publishReply(ctx, envelope.RequestID, reply); err != nil {
		logger.L().ErrorContext(ctx, "failed to publish reply, nacking for redelivery", "request_id", envelope.RequestID, "error", err)
		if err := consumer.Nack(ctx, msg); err != nil {
			logger.L().ErrorContext(ctx, "failed to nack after publish failure", "request_id", envelope.RequestID, "error", err)
		}
		return
	}

	if err := consumer.Ack(ctx, msg); err != nil {
		logger.L().ErrorContext(ctx, "failed to ack processed request", "request_id", envelope.RequestID, "error", err)
	}
}

func (w *Worker) convert(ctx context.Context, envelope docling.RequestEnvelope) docling.ReplyEnvelope {
	bucket := envelope.Bucket
	if bucket == "" {
		bucket = w.cfg.S3Bucket
	}

	rc, err := w.store.Get(ctx, bucket, envelope.S3Key)
	if err != nil {
		return errorReply(envelope.RequestID, "failed to download document: "+err.Error())
	}
	defer rc.Close()

	doc, err := io.ReadAll(rc)
	if err != nil {
		return errorReply(envelope.RequestID, "failed to read document: "+err.Error())
	}

	engineCfg, warnings, err := options.Normalize(envelope.DoclingOptions, w.cfg.NormalizeMode)
	if err != nil {
		return errorReply(envelope.RequestID, "invalid docling_options: "+err.Error())
	}
	for _, warning := range warnings {
		logger.L().WarnContext(ctx, "options normalizer warning", "request_id", envelope.RequestID, "warning", warning)
	}

	convertCtx := ctx
	var cancel context.CancelFunc
	if engineCfg.DocumentTimeout > 0 {
		convertCtx, cancel = context.WithTimeout(ctx, engineCfg.DocumentTimeout)
		defer cancel()
	}

	result, err := w.engine.Convert(convertCtx, doc, engineCfg)
	if err != nil {
		return errorReply(envelope.RequestID, "conversion failed: "+err.Error())
	}

	return docling.ReplyEnvelope{
		RequestID: envelope.RequestID,
		Status:    docling.StatusSuccess,
		Result:    result,
	}
}

func (w *Worker) publishReply(ctx context.Context, requestID string, reply docling.ReplyEnvelope) error {
	if err := w.broker.EnsureStream(ctx, broker.StreamConfig{
		Name:      w.cfg.ResultStreamName(),
		Subjects:  []string{w.cfg.SubjectPrefix + ".result.>"},
		Retention: broker.RetentionLimits,
		MaxAge:    time.Hour,
	}); err != nil {
		return err
	}

	payload, err := json.Marshal(reply)
	if err != nil {
		return err
	}

	return w.broker.Publish(ctx, &broker.Message{
		Subject: w.cfg.ResultSubjectFor(requestID),
		Payload: payload,
	})
}

func errorReply(requestID, message string) docling.ReplyEnvelope {
	return docling.ReplyEnvelope{
		RequestID: requestID,
		Status:    docling.StatusError,
		Error:     message,
	}
}
