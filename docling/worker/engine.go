package worker

import (
	"bytes"
	"context"
	"fmt"

	"github.com/chris-alexander-pop/system-design-library/docling"
)

// ReferenceEngine is a dependency-free Engine implementation. It does not
// run an actual document-layout model; instead it derives a page count
// from PDF object markers and returns the same string as both Text and
// Markdown: a non-PDF document's bytes as-is, or for a PDF a placeholder
// line naming its byte count. It exists so this module is runnable and testable without
// a real docling conversion backend, mirroring the mock fallback the
// source worker uses when the real engine isn't importable.
type ReferenceEngine struct{}

// NewReferenceEngine creates a ReferenceEngine.
func NewReferenceEngine() *ReferenceEngine {
	return &ReferenceEngine{}
}

// Convert implements Engine.
func (e *ReferenceEngine) Convert(ctx context.Context, doc []byte, cfg *docling.EngineConfig) (*docling.ResultRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := detectFormat(doc, cfg)
	pages := countPages(doc, format)

	text := extractText(doc, format)
	markdown := text

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return &docling.ResultRecord{
		Text:     text,
		Markdown: markdown,
		Metadata: docling.ResultMetadata{
			Pages:       pages,
			Format:      format,
			ProcessedBy: "reference_engine",
		},
	}, nil
}

func detectFormat(doc []byte, cfg *docling.EngineConfig) string {
	if bytes.HasPrefix(doc, []byte("%PDF-")) {
		return "pdf"
	}
	if len(cfg.InputFormats) > 0 {
		return cfg.InputFormats[0]
	}
	return "pdf"
}

// countPages counts `/Type /Page` object markers, a cheap and reasonably
// reliable proxy for page count in an uncompressed PDF's object stream.
// Scanned or fully object-stream-compressed PDFs will undercount; this is
// a heuristic, not a PDF parser.
func countPages(doc []byte, format string) int {
	if format != "pdf" {
		return 1
	}
	marker := []byte("/Type /Page")
	count := 0
	rest := doc
	for {
		idx := bytes.Index(rest, marker)
		if idx < 0 {
			break
		}
		// "/Type /Page" also matches as a substring of "/Type /Pages";
		// only count it when not immediately followed by "s".
		end := idx + len(marker)
		if end >= len(rest) || rest[end] != 's' {
			count++
		}
		rest = rest[end:]
	}
	if count == 0 {
		return 1
	}
	return count
}

func extractText(doc []byte, format string) string {
	if format == "pdf" {
		return fmt.Sprintf("[reference engine: %d bytes of pdf content]", len(doc))
	}
	return string(doc)
}
