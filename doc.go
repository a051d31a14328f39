// Package serialisation serialises values to and from bytes by delegating to a
// pluggable binary codec (MessagePack by default).
//
// Two pairs of entry points:
//   - Serialise / Deserialise: value <-> freshly allocated []byte.
//   - SerialiseInto / DeserialiseFrom: value -> io.Writer, io.Reader -> value.
//
// The buffer pair is defined in terms of the stream pair, so
//
//	b, _ := serialisation.Serialise(v)
//	var buf bytes.Buffer
//	_ = serialisation.SerialiseInto(v, &buf)
//	// bytes.Equal(b, buf.Bytes()) == true
//
// Every failure is an *Error whose Kind says which direction failed:
//
//	v, err := serialisation.Deserialise[User](b)
//	if errors.Is(err, serialisation.ErrDeserialise) { ... }
//
// Use New with Options to pick another codec (codec.CBOR, codec.JSON,
// codec.Protobuf), cap decode sizes, or attach a Logger and Hooks.
package serialisation
