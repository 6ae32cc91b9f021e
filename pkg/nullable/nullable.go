// Package nullable provides a JSON field that tells an absent key apart from
// an explicit null.
package nullable

import (
	"bytes"
	"encoding/json"
)

// Field is a JSON value that may be absent, null, or set.
// The zero value is absent.
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Of returns a present, non-null field.
func Of[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: v}
}

// Null returns a present field holding null.
func Null[T any]() Field[T] {
	return Field[T]{Present: true, Null: true}
}

// UnmarshalJSON is only invoked for keys present in the payload, so reaching
// it marks the field as present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}

	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON encodes absent and null fields as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns a pointer to the value, or nil when the field is absent or null.
func (f Field[T]) Ptr() *T {
	if !f.Present || f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// OrZero returns a pointer to the value when present. An explicit null yields
// a pointer to the zero value, which callers use to clear a collection.
func (f Field[T]) OrZero() *T {
	if !f.Present {
		return nil
	}
	v := f.Value
	return &v
}
