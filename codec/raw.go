package codec

import "io"

// Bytes is an identity codec for []byte values. DecodeFrom drains the source,
// so it only makes sense as the last value on a stream.
type Bytes struct{}

func (Bytes) EncodeTo(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}
func (Bytes) DecodeFrom(r io.Reader) ([]byte, error) { return io.ReadAll(r) }

// String is a trivial codec for Go string values. By convention this assumes
// UTF-8 and performs no validation.
type String struct{}

func (String) EncodeTo(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
func (String) DecodeFrom(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	return string(b), err
}
