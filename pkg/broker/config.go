package broker

import "time"

// Config holds the base configuration for the broker.
// Each adapter has its own detailed configuration struct.
type Config struct {
	// Driver specifies which broker adapter to use.
	// Supported values: memory, nats
	Driver string `env:"BROKER_DRIVER" env-default:"nats"`

	// URL is the connection string for the broker.
	URL string `env:"NATS_URL" env-default:"nats://localhost:4222"`

	// Token is an optional auth token embedded in the connection.
	Token string `env:"NATS_TOKEN"`

	// ConnectTimeout bounds the initial connection attempt.
	ConnectTimeout time.Duration `env:"NATS_CONNECT_TIMEOUT" env-default:"5s"`

	// MaxReconnectAttempts caps how many times the client reconnects
	// after losing its connection. Negative means unlimited.
	MaxReconnectAttempts int `env:"NATS_MAX_RECONNECT_ATTEMPTS" env-default:"-1"`
}
