package binding

import "errors"

var (
	// ErrNilTarget is returned when Bind receives no target.
	ErrNilTarget = errors.New("binding: target is required")
	// ErrEmptyKey is returned for descriptors without a key.
	ErrEmptyKey = errors.New("binding: descriptor key is required")
	// ErrDuplicateKey is returned when two descriptors share a key.
	ErrDuplicateKey = errors.New("binding: duplicate descriptor key")
)
