// Package docling defines the wire types and shared configuration for the
// broker-mediated document conversion protocol: a client uploads a document
// to object storage, publishes a lightweight request envelope naming its
// key, and waits on a per-request reply subject for a worker's result.
package docling

import (
	"encoding/json"
	"time"
)

// Status discriminates a ReplyEnvelope's outcome.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// RequestEnvelope is published by a client and consumed by a worker. It
// carries only a pointer to the payload in object storage, not the payload
// itself, so the broker stream stays small regardless of document size.
type RequestEnvelope struct {
	RequestID      string          `json:"request_id"`
	S3Key          string          `json:"s3_key"`
	Bucket         string          `json:"bucket,omitempty"`
	DoclingOptions json.RawMessage `json:"docling_options,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// ReplyEnvelope is published by a worker and consumed by the client that
// submitted the matching request. Exactly one of Result or Error is set,
// depending on Status.
type ReplyEnvelope struct {
	RequestID string       `json:"request_id"`
	Status    Status       `json:"status"`
	Result    *ResultRecord `json:"result,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// ResultRecord is the converted form of a document.
type ResultRecord struct {
	Text           string          `json:"text"`
	Markdown       string          `json:"markdown"`
	StructuredData json.RawMessage `json:"structured_data,omitempty"`
	Metadata       ResultMetadata  `json:"metadata"`
}

// ResultMetadata describes how a ResultRecord was produced.
type ResultMetadata struct {
	Pages       int    `json:"pages"`
	Format      string `json:"format"`
	ProcessedBy string `json:"processed_by"`
}
