package sloghooks

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/serialisation"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	FailureEvery uint64
	// Level for failure events. Defaults to slog.LevelDebug.
	Level slog.Level
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	failureCtr atomic.Uint64
}

var _ serialisation.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SerialiseFailed(err error) {
	if h.l == nil || !sample(h.opts.FailureEvery, &h.failureCtr) {
		return
	}
	h.l.Log(context.Background(), h.opts.Level, "serialisation.serialise_failed", "err", err)
}

func (h *Hooks) DeserialiseFailed(err error) {
	if h.l == nil || !sample(h.opts.FailureEvery, &h.failureCtr) {
		return
	}
	h.l.Log(context.Background(), h.opts.Level, "serialisation.deserialise_failed", "err", err)
}

// DecodeLimitExceeded is never sampled; it usually signals hostile input.
func (h *Hooks) DecodeLimitExceeded(limit int64) {
	if h.l == nil {
		return
	}
	h.l.Warn("serialisation.decode_limit_exceeded", "limit", limit)
}
