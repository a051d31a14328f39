package codec

import (
	"bufio"
	"io"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/proto"
)

// Protobuf writes messages varint length-delimited (protodelim); raw
// protobuf is not self-terminating on a stream. Sources without ReadByte are
// wrapped in a bufio.Reader and may be read past the message.
//
// The zero value is NOT ready to use. Construct with NewProtobuf.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *mypb.User { return &mypb.User{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) EncodeTo(w io.Writer, v T) error {
	_, err := protodelim.MarshalTo(w, v)
	return err
}

func (c Protobuf[T]) DecodeFrom(r io.Reader) (T, error) {
	br, ok := r.(protodelim.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	m := c.new()
	if err := protodelim.UnmarshalFrom(br, m); err != nil {
		var zero T
		return zero, err
	}
	return m, nil
}
