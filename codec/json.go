package codec

import (
	"encoding/json"
	"io"
)

// JSON streams values as newline-terminated JSON documents.
type JSON[V any] struct{}

func (JSON[V]) EncodeTo(w io.Writer, v V) error { return json.NewEncoder(w).Encode(v) }
func (JSON[V]) DecodeFrom(r io.Reader) (V, error) {
	var v V
	err := json.NewDecoder(r).Decode(&v)
	return v, err
}
