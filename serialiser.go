package serialisation

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	c "github.com/unkn0wn-root/serialisation/codec"
)

// Serialiser binds a codec, an optional decode limit, a Logger and Hooks.
// It holds no per-call state and is safe for concurrent use.
type Serialiser[V any] struct {
	codec c.Codec[V]
	limit int64
	log   Logger
	hooks Hooks
}

func newSerialiser[V any](opts Options[V]) (*Serialiser[V], error) {
	if opts.MaxDecodeSize < 0 {
		return nil, fmt.Errorf("serialisation: negative MaxDecodeSize %d", opts.MaxDecodeSize)
	}

	s := &Serialiser[V]{limit: opts.MaxDecodeSize}
	s.codec = coalesce[c.Codec[V]](opts.Codec, c.Msgpack[V]{})
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	if s.limit > 0 {
		s.codec = c.Limit[V]{Inner: s.codec, MaxDecode: s.limit}
	}
	return s, nil
}

// Serialise encodes v into a new byte slice via SerialiseInto.
func (s *Serialiser[V]) Serialise(v V) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.SerialiseInto(v, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialise decodes one value from b via DeserialiseFrom.
func (s *Serialiser[V]) Deserialise(b []byte) (V, error) {
	return s.DeserialiseFrom(bytes.NewReader(b))
}

// SerialiseInto writes the encoded form of v to w. On failure w may hold a
// partial encoding.
func (s *Serialiser[V]) SerialiseInto(v V, w io.Writer) error {
	if err := s.codec.EncodeTo(w, v); err != nil {
		s.log.Debug("serialise failed", Fields{"op": KindSerialise.String(), "err": err})
		s.hooks.SerialiseFailed(err)
		return serialiseErr(err)
	}
	return nil
}

// DeserialiseFrom reads one value from r. On failure the zero V is returned.
func (s *Serialiser[V]) DeserialiseFrom(r io.Reader) (V, error) {
	v, err := s.codec.DecodeFrom(r)
	if err != nil {
		var zero V
		s.log.Debug("deserialise failed", Fields{"op": KindDeserialise.String(), "err": err})
		if errors.Is(err, c.ErrPayloadTooLarge) {
			s.hooks.DecodeLimitExceeded(s.limit)
		}
		s.hooks.DeserialiseFailed(err)
		return zero, deserialiseErr(err)
	}
	return v, nil
}
