// Package optional provides a small Option type used across the SDK to keep
// "no value" distinct from a legitimate zero value.
package optional

import (
	"encoding/json"
	"fmt"
)

// Option holds either a value (Some) or nothing (None). The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v as a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent value of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsPresent reports whether o holds a value.
func (o Option[T]) IsPresent() bool { return o.ok }

// OrElse returns the wrapped value, or def when o is None.
func (o Option[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// String renders Some(v) as fmt's %v of v and None as "<none>".
func (o Option[T]) String() string {
	if !o.ok {
		return "<none>"
	}
	return fmt.Sprintf("%v", o.value)
}

// MarshalJSON encodes None as null and Some(v) as v.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
