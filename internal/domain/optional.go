package domain

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes a field that was not supplied from one supplied as null
// or with a value. The zero value is "absent".
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func Some[T any](v T) Optional[T] { return Optional[T]{Value: v, Set: true} }

func Null[T any]() Optional[T] { return Optional[T]{Set: true, Null: true} }

// Get reports the value and whether a non-null value was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set && !o.Null
}

// OrElse returns the supplied value, or def when the field was absent.
// Callers must reject Null before relying on it.
func (o Optional[T]) OrElse(def T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return def
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(b, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// requireNonNull rejects an explicit null for a column that cannot hold one.
func requireNonNull[T any](field string, o Optional[T]) error {
	if o.Set && o.Null {
		return ErrValidationMeta("invalid field", map[string]string{field: "must not be null"})
	}
	return nil
}
