package codec

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type user struct {
	ID   string   `json:"id" msgpack:"id" cbor:"id"`
	Name string   `json:"name" msgpack:"name" cbor:"name"`
	Tags []string `json:"tags" msgpack:"tags" cbor:"tags"`
}

func roundTrip[V any](t *testing.T, c Codec[V], v V) V {
	t.Helper()
	var buf bytes.Buffer
	if err := c.EncodeTo(&buf, v); err != nil {
		t.Fatalf("EncodeTo: %v", err)
	}
	got, err := c.DecodeFrom(&buf)
	if err != nil {
		t.Fatalf("DecodeFrom: %v", err)
	}
	return got
}

func TestStructCodecsRoundTrip(t *testing.T) {
	in := user{ID: "1", Name: "Ada", Tags: []string{"a", "b"}}
	cases := []struct {
		name  string
		codec Codec[user]
	}{
		{"msgpack", Msgpack[user]{}},
		{"cbor", MustCBOR[user](false)},
		{"cbor-deterministic", MustCBOR[user](true)},
		{"json", JSON[user]{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := roundTrip(t, tc.codec, in); !reflect.DeepEqual(got, in) {
				t.Fatalf("got %+v want %+v", got, in)
			}
		})
	}
}

// cbor.Decoder keeps its own read-ahead buffer, so only codecs that decode
// straight off a ByteScanner can share one source between calls.
func TestCodecsDecodeSequentialValues(t *testing.T) {
	cases := []struct {
		name  string
		codec Codec[user]
	}{
		{"msgpack", Msgpack[user]{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := user{ID: "1", Name: "Ada"}
			b := user{ID: "2", Name: "Grace"}
			var buf bytes.Buffer
			if err := tc.codec.EncodeTo(&buf, a); err != nil {
				t.Fatal(err)
			}
			if err := tc.codec.EncodeTo(&buf, b); err != nil {
				t.Fatal(err)
			}
			br := bufio.NewReader(&buf)
			for _, want := range []user{a, b} {
				got, err := tc.codec.DecodeFrom(br)
				if err != nil {
					t.Fatalf("DecodeFrom: %v", err)
				}
				if !reflect.DeepEqual(got, want) {
					t.Fatalf("got %+v want %+v", got, want)
				}
			}
		})
	}
}

func TestCodecsRejectEmptySource(t *testing.T) {
	cases := []struct {
		name  string
		codec Codec[user]
	}{
		{"msgpack", Msgpack[user]{}},
		{"cbor", MustCBOR[user](false)},
		{"json", JSON[user]{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.codec.DecodeFrom(bytes.NewReader(nil)); err == nil {
				t.Fatalf("expected error on empty source")
			}
		})
	}
}

func TestProtobufDelimited(t *testing.T) {
	c := NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })

	var buf bytes.Buffer
	for _, s := range []string{"first", "second"} {
		if err := c.EncodeTo(&buf, wrapperspb.String(s)); err != nil {
			t.Fatalf("EncodeTo: %v", err)
		}
	}
	// plain bytes.Reader implements ReadByte, so no read-ahead happens
	r := bytes.NewReader(buf.Bytes())
	for _, want := range []string{"first", "second"} {
		got, err := c.DecodeFrom(r)
		if err != nil {
			t.Fatalf("DecodeFrom: %v", err)
		}
		if !proto.Equal(got, wrapperspb.String(want)) {
			t.Fatalf("got %q want %q", got.GetValue(), want)
		}
	}
	if _, err := c.DecodeFrom(r); err == nil {
		t.Fatalf("expected error at end of stream")
	}
}

func TestRawCodecs(t *testing.T) {
	if got := roundTrip[[]byte](t, Bytes{}, []byte{0, 1, 2}); !bytes.Equal(got, []byte{0, 1, 2}) {
		t.Fatalf("bytes: got %x", got)
	}
	if got := roundTrip[string](t, String{}, "héllo"); got != "héllo" {
		t.Fatalf("string: got %q", got)
	}
}

func TestLimitRejectsOversizedPayload(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 4}

	got, err := c.DecodeFrom(strings.NewReader("abcd"))
	if err != nil || got != "abcd" {
		t.Fatalf("at limit: got %q err=%v", got, err)
	}

	_, err = c.DecodeFrom(strings.NewReader("abcde"))
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("over limit: want ErrPayloadTooLarge, got %v", err)
	}
}

func TestLimitDisabledAndEncodeForwarded(t *testing.T) {
	c := Limit[user]{Inner: Msgpack[user]{}}
	in := user{ID: "1", Name: strings.Repeat("x", 1024)}

	var direct, limited bytes.Buffer
	if err := (Msgpack[user]{}).EncodeTo(&direct, in); err != nil {
		t.Fatal(err)
	}
	if err := c.EncodeTo(&limited, in); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(direct.Bytes(), limited.Bytes()) {
		t.Fatalf("EncodeTo should forward to inner codec unchanged")
	}
	if got := roundTrip[user](t, c, in); !reflect.DeepEqual(got, in) {
		t.Fatalf("disabled limit should not affect decode")
	}
}

func TestLimitAppliesToStructuredDecode(t *testing.T) {
	in := user{ID: "1", Name: strings.Repeat("x", 256)}
	var buf bytes.Buffer
	if err := (Msgpack[user]{}).EncodeTo(&buf, in); err != nil {
		t.Fatal(err)
	}
	c := Limit[user]{Inner: Msgpack[user]{}, MaxDecode: 64}
	if _, err := c.DecodeFrom(&buf); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("want ErrPayloadTooLarge, got %v", err)
	}
}

func TestLimitKeepsSequentialValues(t *testing.T) {
	pb := NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })
	var buf bytes.Buffer
	for _, s := range []string{"first", "second"} {
		if err := pb.EncodeTo(&buf, wrapperspb.String(s)); err != nil {
			t.Fatal(err)
		}
	}

	c := Limit[*wrapperspb.StringValue]{Inner: pb, MaxDecode: 64}
	br := bufio.NewReader(&buf)
	for _, want := range []string{"first", "second"} {
		got, err := c.DecodeFrom(br)
		if err != nil {
			t.Fatalf("DecodeFrom: %v", err)
		}
		if got.GetValue() != want {
			t.Fatalf("got %q want %q", got.GetValue(), want)
		}
	}
}

func TestLimitScannerBudget(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("ab"))
	ls := &limitScanner{limitReader: &limitReader{r: br, n: 1}, s: br}

	if b, err := ls.ReadByte(); err != nil || b != 'a' {
		t.Fatalf("ReadByte: %q %v", b, err)
	}
	if err := ls.UnreadByte(); err != nil {
		t.Fatalf("UnreadByte: %v", err)
	}
	// unread gave the byte back to the budget
	if b, err := ls.ReadByte(); err != nil || b != 'a' {
		t.Fatalf("ReadByte after unread: %q %v", b, err)
	}
	if _, err := ls.ReadByte(); !errors.Is(err, ErrPayloadTooLarge) || !ls.exceeded {
		t.Fatalf("want overrun at boundary, got %v", err)
	}
	// the byte seen while detecting the overrun stays in the source
	if b, err := br.ReadByte(); err != nil || b != 'b' {
		t.Fatalf("source lost a byte: %q %v", b, err)
	}
}

func TestLimitScannerCleanEOFAtBoundary(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("a"))
	ls := &limitScanner{limitReader: &limitReader{r: br, n: 1}, s: br}

	if _, err := ls.ReadByte(); err != nil {
		t.Fatal(err)
	}
	if _, err := ls.ReadByte(); !errors.Is(err, io.EOF) || ls.exceeded {
		t.Fatalf("want clean EOF, got %v exceeded=%v", err, ls.exceeded)
	}
}
