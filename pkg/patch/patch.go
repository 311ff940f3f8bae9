// Package patch define el tipo de campo opcional usado por los requests de
// actualización parcial. Un campo puede estar ausente del payload, venir como
// null explícito o traer un valor; las tres cosas significan distinto: solo
// los campos presentes se aplican, y un null presente escribe NULL.
package patch

import "github.com/goccy/go-json"

// Field campo opcional de un request de actualización parcial.
// El cero value representa un campo ausente.
type Field[T any] struct {
	present bool
	null    bool
	value   T
}

// Of construye un campo presente con valor (útil en tests y usecases).
func Of[T any](v T) Field[T] {
	return Field[T]{present: true, value: v}
}

// Null construye un campo presente con null explícito.
func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// UnmarshalJSON marca el campo como presente; solo se invoca si la clave
// aparece en el payload.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if string(data) == "null" {
		f.null = true
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

// Present indica si el campo venía en el payload (con valor o con null).
func (f Field[T]) Present() bool { return f.present }

// IsNull indica si el campo venía como null explícito.
func (f Field[T]) IsNull() bool { return f.null }

// Value devuelve el valor y true solo si el campo trae un valor no null.
func (f Field[T]) Value() (T, bool) {
	if !f.present || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// Ptr devuelve un puntero al valor, o nil si el campo es null o está ausente.
// Un puntero nil se bindea como NULL en SQL.
func (f Field[T]) Ptr() *T {
	if !f.present || f.null {
		return nil
	}
	v := f.value
	return &v
}
