// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    FailureEvery: 10, // sample logs: ~every 10th failure
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	s, _ := serialisation.New[User](serialisation.Options[User]{
//	    MaxDecodeSize: 1 << 20,
//	    Hooks:         hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/serialisation"
)

// Hooks forwards events to inner on a worker pool. Events are dropped when
// the queue is full, and after Close.
type Hooks struct {
	inner serialisation.Hooks
	q     chan func()
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var _ serialisation.Hooks = (*Hooks)(nil)

func New(inner serialisation.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops accepting events and waits for queued ones to run.
func (h *Hooks) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.q)
	h.mu.Unlock()
	h.wg.Wait()
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) SerialiseFailed(err error)   { h.try(func() { h.inner.SerialiseFailed(err) }) }
func (h *Hooks) DeserialiseFailed(err error) { h.try(func() { h.inner.DeserialiseFailed(err) }) }
func (h *Hooks) DecodeLimitExceeded(limit int64) {
	h.try(func() { h.inner.DecodeLimitExceeded(limit) })
}
