package codec

import (
	"errors"
	"fmt"
	"io"
)

var ErrPayloadTooLarge = errors.New("codec: payload too large")

// Limit wraps another codec to enforce a maximum number of bytes the inner
// decoder may pull from the source. EncodeTo is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: protect against oversized/malicious inputs coming from an
// untrusted source. Inner decoders that read ahead count buffered bytes too.
// When the source is an io.ByteScanner (e.g. *bufio.Reader) the budget reader
// keeps ReadByte/UnreadByte, so inner decoders read straight off the caller's
// buffer and consecutive values on one source stay intact.
//
// The zero value is NOT ready to use: Inner must be set or calls panic.
type Limit[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted number of bytes read from the source.
	MaxDecode int64
}

func (c Limit[V]) EncodeTo(w io.Writer, v V) error { return c.Inner.EncodeTo(w, v) }
func (c Limit[V]) DecodeFrom(r io.Reader) (V, error) {
	if c.MaxDecode <= 0 {
		return c.Inner.DecodeFrom(r)
	}
	lr := &limitReader{r: r, n: c.MaxDecode}
	var src io.Reader = lr
	if bs, ok := r.(io.ByteScanner); ok {
		src = &limitScanner{limitReader: lr, s: bs}
	}
	v, err := c.Inner.DecodeFrom(src)
	if lr.exceeded {
		var zero V
		return zero, fmt.Errorf("%w: more than %d bytes", ErrPayloadTooLarge, c.MaxDecode)
	}
	return v, err
}

// limitReader is io.LimitedReader that remembers whether the budget was
// overrun instead of reporting a plain EOF.
type limitReader struct {
	r        io.Reader
	n        int64
	exceeded bool
}

func (l *limitReader) Read(p []byte) (int, error) {
	if l.n <= 0 {
		// probe one byte: a clean EOF at the boundary is not an overrun
		var one [1]byte
		n, err := l.r.Read(one[:])
		if n > 0 {
			l.exceeded = true
			return 0, ErrPayloadTooLarge
		}
		return 0, err
	}
	if int64(len(p)) > l.n {
		p = p[:l.n]
	}
	n, err := l.r.Read(p)
	l.n -= int64(n)
	return n, err
}

// limitScanner charges ReadByte against the same budget; UnreadByte gives
// the byte back.
type limitScanner struct {
	*limitReader
	s io.ByteScanner
}

func (l *limitScanner) ReadByte() (byte, error) {
	if l.n <= 0 {
		if _, err := l.s.ReadByte(); err != nil {
			return 0, err
		}
		_ = l.s.UnreadByte()
		l.exceeded = true
		return 0, ErrPayloadTooLarge
	}
	b, err := l.s.ReadByte()
	if err == nil {
		l.n--
	}
	return b, err
}

func (l *limitScanner) UnreadByte() error {
	if err := l.s.UnreadByte(); err != nil {
		return err
	}
	l.n++
	return nil
}
