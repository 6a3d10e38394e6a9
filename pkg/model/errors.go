package model

import "errors"

var (
	// ErrNotStructPtr is returned by Struct when the argument is not a
	// non-nil pointer to a struct.
	ErrNotStructPtr = errors.New("model: target must be a pointer to struct")
	// ErrUnknownField is returned when a key does not name a field of the
	// target.
	ErrUnknownField = errors.New("model: unknown field")
	// ErrValueType is returned when a value cannot be stored in the field
	// it is bound to.
	ErrValueType = errors.New("model: value type mismatch")
)
