// Command rest-service exposes an HTTP gateway in front of the document
// conversion protocol: POST a document, get the converted result back in
// the same request once a worker has processed it.
package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/chris-alexander-pop/system-design-library/docling"
	"github.com/chris-alexander-pop/system-design-library/docling/client"
	"github.com/chris-alexander-pop/system-design-library/pkg/broker"
	natsbroker "github.com/chris-alexander-pop/system-design-library/pkg/broker/adapters/nats"
	"github.com/chris-alexander-pop/system-design-library/pkg/config"
	appErrors "github.com/chris-alexander-pop/system-design-library/pkg/errors"
	"github.com/chris-alexander-pop/system-design-library/pkg/logger"
	"github.com/chris-alexander-pop/system-design-library/pkg/objectstore"
	"github.com/chris-alexander-pop/system-design-library/pkg/objectstore/adapters/s3"
)

const maxUploadBytes = 64 << 20 // 64MiB, well above a typical single document

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

	rawBroker, err := natsbroker.New(context.Background(), broker.Config{
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

	rawStore, err := s3.New(context.Background(), objectstore.Config{
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
	store := objectstore.NewInstrumentedStore(rawStore, "docling-gateway")

	c := client.New(b, store, cfg)

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.POST("/documents", func(ec echo.Context) error {
		req := ec.Request()
		req.Body = http.MaxBytesReader(ec.Response(), req.Body, maxUploadBytes)

		source, err := io.ReadAll(req.Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "failed to read document body")
		}

		var rawOptions json.RawMessage
		if opts := req.URL.Query().Get("docling_options"); opts != "" {
			rawOptions = json.RawMessage(opts)
		}

		timeout := client.DefaultTimeout
		result, err := c.Submit(ec.Request().Context(), source, rawOptions, timeout)
		if err != nil {
			return httpStatusFor(err, ec)
		}
		return ec.JSON(http.StatusOK, result)
	})

	e.GET("/healthz", func(ec echo.Context) error {
		return ec.String(http.StatusOK, "ok")
	})

	addr := ":8080"
	log.Info("gateway listening", "addr", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Error("gateway exited with error", "error", err)
		os.Exit(1)
	}
}

func httpStatusFor(err error, ec echo.Context) error {
	var appErr *appErrors.AppError
	if !appErrors.As(err, &appErr) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	switch appErr.Code {
	case appErrors.CodeTimeout:
		return echo.NewHTTPError(http.StatusGatewayTimeout, appErr.Message)
	case appErrors.CodeUnavailable:
		return echo.NewHTTPError(http.StatusServiceUnavailable, appErr.Message)
	case appErrors.CodeInvalidArgument:
		return echo.NewHTTPError(http.StatusBadRequest, appErr.Message)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, appErr.Message)
	}
}
