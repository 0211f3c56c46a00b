package dto

import (
	"bytes"
	"encoding/json"
)

// Optional campo de un PATCH con tres estados: ausente (Set=false), null explícito (Null=true)
// o valor. Se serializa con la etiqueta omitzero para que "ausente" no se escriba.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some construye un Optional con valor.
func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: v} }

// Null construye un Optional con null explícito.
func Null[T any]() Optional[T] { return Optional[T]{Set: true, Null: true} }

// Present true si el campo vino con un valor distinto de null.
func (o Optional[T]) Present() bool { return o.Set && !o.Null }

// IsZero usado por encoding/json con omitzero.
func (o Optional[T]) IsZero() bool { return !o.Set }

// Ptr devuelve nil para null y un puntero al valor en otro caso. Solo tiene sentido con Set=true.
func (o Optional[T]) Ptr() *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
