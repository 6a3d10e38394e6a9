package html

import "errors"

var (
	// ErrInvalidSelector reports a slot selector that is not of the form "#id".
	ErrInvalidSelector = errors.New("html: selector must be #id")
	// ErrNilDocument reports a render on a nil document.
	ErrNilDocument = errors.New("html: document is nil")
)
