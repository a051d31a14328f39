package serialisation

import c "github.com/unkn0wn-root/serialisation/codec"

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func defaultSerialiser[V any]() *Serialiser[V] {
	return &Serialiser[V]{
		codec: c.Msgpack[V]{},
		log:   NopLogger{},
		hooks: NopHooks{},
	}
}
