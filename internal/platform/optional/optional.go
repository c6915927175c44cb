// Package optional provides an explicit maybe-absent value.
package optional

import (
	"bytes"

	sonic "github.com/bytedance/sonic"
)

var jsonNull = []byte("null")

// Value holds a T that may be absent. The zero Value is absent.
type Value[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr maps nil to None.
func FromPtr[T any](v *T) Value[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

func (v Value[T]) IsSome() bool {
	return v.set
}

func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

func (v Value[T]) OrElse(fallback T) T {
	if !v.set {
		return fallback
	}
	return v.value
}

func (v Value[T]) Ptr() *T {
	if !v.set {
		return nil
	}
	out := v.value
	return &out
}

// MarshalJSON encodes an absent value as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set {
		return jsonNull, nil
	}
	return sonic.Marshal(v.value)
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*v = None[T]()
		return nil
	}

	var out T
	if err := sonic.Unmarshal(data, &out); err != nil {
		return err
	}
	*v = Some(out)
	return nil
}
