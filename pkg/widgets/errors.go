package widgets

import "errors"

var (
	// ErrBusy is returned when an edit or push reaches a widget that is
	// still processing a previous one, e.g. a Change callback editing the
	// widget that triggered it.
	ErrBusy = errors.New("widgets: widget is updating")
	// ErrNoVariant is returned when a descriptor carries no widget variant.
	ErrNoVariant = errors.New("widgets: widget variant is required")
	// ErrUnknownType is returned by the registry for unregistered type names.
	ErrUnknownType = errors.New("widgets: unknown widget type")
	// ErrInvalidInput is returned when a raw edit event cannot be read by the
	// widget variant.
	ErrInvalidInput = errors.New("widgets: invalid input")
	// ErrOptionRange is returned when an option edit selects an index outside
	// the option list.
	ErrOptionRange = errors.New("widgets: option index out of range")
)
