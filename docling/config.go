package docling

import "time"

// Config is the unified runtime configuration for both the client and
// worker binaries. Fields map directly onto the environment variables the
// deployed system is configured with.
type Config struct {
	// Broker connection.
	NATSURL                  string        `env:"NATS_URL" env-default:"nats://localhost:4222"`
	NATSToken                string        `env:"NATS_TOKEN"`
	NATSConnectTimeout       time.Duration `env:"NATS_CONNECT_TIMEOUT" env-default:"10s"`
	NATSMaxReconnectAttempts int           `env:"NATS_MAX_RECONNECT_ATTEMPTS" env-default:"10"`

	// SubjectPrefix namespaces the process/result/status subject
	// hierarchy so multiple deployments can share a broker.
	SubjectPrefix string `env:"SUBJECT_PREFIX" env-default:"docling"`

	// Object storage.
	S3EndpointURL   string `env:"S3_ENDPOINT_URL"`
	AWSRegion       string `env:"AWS_DEFAULT_REGION" env-default:"us-east-1"`
	S3Bucket        string `env:"S3_BUCKET" env-default:"documents" validate:"required,min=3,max=63"`
	AWSAccessKeyID  string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`

	// CleanupOnError controls whether a client deletes the uploaded
	// payload object when submit terminates in any error.
	CleanupOnError bool `env:"CLEANUP_ON_ERROR" env-default:"true"`

	// NormalizeMode controls how the options normalizer (C5) handles a
	// descriptor it cannot confidently classify as simple or rich. Strict
	// surfaces an EnvelopeInvalid error; Permissive falls back to engine
	// defaults and records a warning. The source this system is modeled
	// on always falls back silently; that default is judged unsafe for an
	// operator running this service in production, so Strict is the
	// default here.
	NormalizeMode NormalizeMode `env:"NORMALIZE_MODE" env-default:"strict"`

	// Worker tuning.
	WorkerConsumerName string        `env:"WORKER_CONSUMER_NAME" env-default:"docling-workers"`
	NumWorkers         int           `env:"NUM_WORKERS" env-default:"4"`
	FetchBatch         int           `env:"WORKER_FETCH_BATCH" env-default:"1"`
	FetchTimeout       time.Duration `env:"WORKER_FETCH_TIMEOUT" env-default:"10s"`
	AckWait            time.Duration `env:"WORKER_ACK_WAIT" env-default:"60s"`
	MaxDeliver         int           `env:"WORKER_MAX_DELIVER" env-default:"5"`

	// Logging, in the same idiom as every other service in this module.
	LogLevel  string  `env:"LOG_LEVEL" env-default:"INFO"`
	LogFormat string  `env:"LOG_FORMAT" env-default:"JSON"`
	LogSamplingRate float64 `env:"LOG_SAMPLING_RATE" env-default:"1.0"`
}

// NormalizeMode controls options-normalizer behavior on ambiguous input.
type NormalizeMode string

const (
	NormalizeModeStrict     NormalizeMode = "strict"
	NormalizeModePermissive NormalizeMode = "permissive"
)

// ProcessSubject returns the single-token wildcard subject matching every
// concrete process subject ProcessSubjectFor produces.
func (c Config) ProcessSubject() string {
	return c.SubjectPrefix + ".process.*"
}

// ProcessSubjectFor returns the concrete process subject for requestID.
func (c Config) ProcessSubjectFor(requestID string) string {
	return c.SubjectPrefix + ".process." + requestID
}

// ResultSubjectFor returns the reply subject a client's ephemeral consumer
// binds to and a worker publishes its reply on.
func (c Config) ResultSubjectFor(requestID string) string {
	return c.SubjectPrefix + ".result." + requestID
}

// RequestStreamName is the work-queue stream holding undelivered requests.
func (c Config) RequestStreamName() string {
	return c.SubjectPrefix + "_requests"
}

// ResultStreamName is the limits-retention stream holding replies.
func (c Config) ResultStreamName() string {
	return c.SubjectPrefix + "_results"
}
