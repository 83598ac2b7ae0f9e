package logger

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
)

// SamplingHandler drops a fraction of records to bound log volume under
// load. Warn and above always pass through, so sampling never hides errors.
type SamplingHandler struct {
	next slog.Handler
	rate float64
	mu   sync.Mutex
	rand *rand.Rand
}

// NewSamplingHandler wraps next, keeping records with probability rate
// (0..1). Records at Warn level or above always pass through.
func NewSamplingHandler(next slog.Handler, rate float64) *SamplingHandler {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return &SamplingHandler{next: next, rate: rate, rand: rand.New(rand.NewSource(1))}
}

func (h *SamplingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *SamplingHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		return h.next.Handle(ctx, r)
	}

	h.mu.Lock()
	keep := h.rand.Float64() < h.rate
	h.mu.Unlock()

	if keep {
		return h.next.Handle(ctx, r)
	}
	return nil
}

func (h *SamplingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &SamplingHandler{next: h.next.WithAttrs(attrs), rate: h.rate, rand: h.rand}
}

func (h *SamplingHandler) WithGroup(name string) slog.Handler {
	return &SamplingHandler{next: h.next.WithGroup(name), rate: h.rate, rand: h.rand}
}
