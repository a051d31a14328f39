package serialisation

// Hooks lightweight callbacks for failed calls.
// Implementations MUST be cheap and non-blocking.
// They run on the caller's goroutine before the error is returned.
type Hooks interface {
	// Encode traversal or sink write failed.
	SerialiseFailed(err error)

	// Decode traversal or source read failed (includes limit overruns).
	DeserialiseFailed(err error)

	// Decode aborted because the source yielded more than limit bytes.
	DecodeLimitExceeded(limit int64)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SerialiseFailed(error)     {}
func (NopHooks) DeserialiseFailed(error)   {}
func (NopHooks) DecodeLimitExceeded(int64) {}
