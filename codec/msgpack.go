package codec

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack is a Codec that serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// Structs encode as maps keyed by field name. Add a `msgpack:",as_array"`
// tag on a `_msgpack struct{}` field to encode a struct as a positional array.
//
// The decoder reads through a bufio.Reader when r is not an io.ByteScanner,
// so it may consume bytes past the decoded value.
type Msgpack[V any] struct{}

var _ Codec[struct{}] = Msgpack[struct{}]{}

func (Msgpack[V]) EncodeTo(w io.Writer, v V) error {
	return msgpack.NewEncoder(w).Encode(v)
}

func (Msgpack[V]) DecodeFrom(r io.Reader) (V, error) {
	var v V
	err := msgpack.NewDecoder(r).Decode(&v)
	return v, err
}
