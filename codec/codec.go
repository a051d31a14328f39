package codec

import "io"

// Codec streams values V to and from bytes. Implementations hold no per-call
// state and must be safe for concurrent use.
type Codec[V any] interface {
	// EncodeTo writes the encoded form of v to w.
	EncodeTo(w io.Writer, v V) error
	// DecodeFrom reads exactly one value from r.
	DecodeFrom(r io.Reader) (V, error)
}
