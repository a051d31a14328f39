package serialisation

import (
	"errors"
	"fmt"
)

// Kind tells which direction of a codec call failed.
type Kind uint8

const (
	KindSerialise Kind = iota + 1
	KindDeserialise
)

func (k Kind) String() string {
	switch k {
	case KindSerialise:
		return "serialise"
	case KindDeserialise:
		return "deserialise"
	default:
		return "unknown"
	}
}

var (
	// ErrSerialise matches (errors.Is) any *Error of KindSerialise.
	ErrSerialise = errors.New("serialise error")
	// ErrDeserialise matches (errors.Is) any *Error of KindDeserialise.
	ErrDeserialise = errors.New("deserialise error")
)

// Error wraps the codec (or sink/source) error behind a single type.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s error", e.Kind)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrSerialise:
		return e.Kind == KindSerialise
	case ErrDeserialise:
		return e.Kind == KindDeserialise
	}
	return false
}

func serialiseErr(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindSerialise, Err: err}
}

func deserialiseErr(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindDeserialise, Err: err}
}
