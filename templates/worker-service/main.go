// Command worker-service runs the document conversion worker pool: it pulls
// requests off the shared request stream, converts each document, and
// replies on the requester's per-request subject.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chris-alexander-pop/system-design-library/docling"
	"github.com/chris-alexander-pop/system-design-library/docling/worker"
	"github.com/chris-alexander-pop/system-design-library/pkg/broker"
	natsbroker "github.com/chris-alexander-pop/system-design-library/pkg/broker/adapters/nats"
	"github.com/chris-alexander-pop/system-design-library/pkg/config"
	"github.com/chris-alexander-pop/system-design-library/pkg/logger"
	"github.com/chris-alexander-pop/system-design-library/pkg/objectstore"
	"github.com/chris-alexander-pop/system-design-library/pkg/objectstore/adapters/s3"
)

func main() {
	var cfg docling.Config
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var resilientCfg broker.ResilientBrokerConfig
	if err := config.Load(&resilientCfg); err != nil {
		slog.Error("failed to load broker resilience config", "error", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Config{
		Level:        cfg.LogLevel,
		Format:       cfg.LogFormat,
		SamplingRate: cfg.LogSamplingRate,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rawBroker, err := natsbroker.New(ctx, broker.Config{
		URL:                  cfg.NATSURL,
		Token:                cfg.NATSToken,
		ConnectTimeout:       cfg.NATSConnectTimeout,
		MaxReconnectAttempts: cfg.NATSMaxReconnectAttempts,
	})
	if err != nil {
		log.Error("failed to connect to broker", "error", err)
		os.Exit(1)
	}
	defer rawBroker.Close()
	b := broker.NewInstrumentedBroker(broker.NewResilientBroker(rawBroker, resilientCfg))

	rawStore, err := s3.New(ctx, objectstore.Config{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.S3EndpointURL,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Bucket:          cfg.S3Bucket,
	})
	if err != nil {
		log.Error("failed to build object store", "error", err)
		os.Exit(1)
	}
	store := objectstore.NewInstrumentedStore(rawStore, "docling-worker")

	w := worker.New(b, store, worker.NewReferenceEngine(), cfg)

	log.Info("worker starting", "consumer", cfg.WorkerConsumerName, "num_workers", cfg.NumWorkers)
	if err := w.Run(ctx); err != nil {
		log.Error("worker exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("worker shut down cleanly")
}
