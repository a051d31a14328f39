package serialisation

import (
	"io"

	c "github.com/unkn0wn-root/serialisation/codec"
)

// Options tune a Serialiser. All fields are optional.
type Options[V any] struct {
	Codec         c.Codec[V] // nil => codec.Msgpack[V]
	MaxDecodeSize int64      // bytes read per decode; <= 0 => unlimited
	Logger        Logger     // if nil, NopLogger is used
	Hooks         Hooks      // if nil, NopHooks is used
}

func New[V any](opts Options[V]) (*Serialiser[V], error) {
	return newSerialiser[V](opts)
}

// MustNew is like New but panics on error.
func MustNew[V any](opts Options[V]) *Serialiser[V] {
	s, err := New[V](opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Serialise encodes v with MessagePack into a new byte slice.
func Serialise[V any](v V) ([]byte, error) {
	return defaultSerialiser[V]().Serialise(v)
}

// Deserialise decodes one MessagePack value of type V from b.
// Bytes after the first value are ignored.
func Deserialise[V any](b []byte) (V, error) {
	return defaultSerialiser[V]().Deserialise(b)
}

// SerialiseInto encodes v with MessagePack directly into w.
func SerialiseInto[V any](v V, w io.Writer) error {
	return defaultSerialiser[V]().SerialiseInto(v, w)
}

// DeserialiseFrom decodes one MessagePack value of type V from r.
// When r is not an io.ByteScanner the decoder reads through a bufio.Reader
// and may consume bytes past the value; pass a *bufio.Reader to decode
// several values in a row.
func DeserialiseFrom[V any](r io.Reader) (V, error) {
	return defaultSerialiser[V]().DeserialiseFrom(r)
}
