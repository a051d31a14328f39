package provider

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound = errors.New("provider: key not found")
	ErrRejected = errors.New("provider: write rejected")
	ErrClosed   = errors.New("provider: writer closed")
)

// Writer collects bytes for one key and stores them on Close.
// A Provider has no append operation, so nothing reaches the store before
// Close. Writes are refused once Close has been called; a Close that failed
// keeps the bytes and can be retried. Not safe for concurrent use.
type Writer struct {
	ctx    context.Context
	p      Provider
	key    string
	ttl    time.Duration
	buf    bytes.Buffer
	closed bool // no more writes
	stored bool // Set succeeded
}

func NewWriter(ctx context.Context, p Provider, key string, ttl time.Duration) *Writer {
	return &Writer{ctx: ctx, p: p, key: key, ttl: ttl}
}

func (w *Writer) Write(b []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	return w.buf.Write(b)
}

// Close stores everything written so far under the key. Cost is the
// payload length.
func (w *Writer) Close() error {
	if w.stored {
		return nil
	}
	w.closed = true
	b := w.buf.Bytes()
	if b == nil {
		b = []byte{}
	}
	ok, err := w.p.Set(w.ctx, w.key, b, int64(len(b)), w.ttl)
	if err != nil {
		return fmt.Errorf("provider: set %q: %w", w.key, err)
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrRejected, w.key)
	}
	w.stored = true
	return nil
}

// NewReader returns a reader over the bytes stored under key.
func NewReader(ctx context.Context, p Provider, key string) (*bytes.Reader, error) {
	b, ok, err := p.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("provider: get %q: %w", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return bytes.NewReader(b), nil
}
