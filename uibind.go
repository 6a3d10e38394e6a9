// Package uibind maps declarative field descriptors onto live widgets bound
// to a shared target, and pushes external state back into those widgets.
//
// The building blocks live under pkg/: model (descriptors and targets),
// widgets, labels, binding, schema and the html and tui containers. This
// package re-exports the common entry points.
package uibind

import (
	"fmt"
	"log/slog"

	"github.com/goliatone/go-uibind/internal/logging"
	"github.com/goliatone/go-uibind/pkg/binding"
	"github.com/goliatone/go-uibind/pkg/model"
)

// Descriptor aliases model.Descriptor.
type Descriptor = model.Descriptor

// Slider, Checkbox and Option alias the widget variants.
type (
	Slider   = model.Slider
	Checkbox = model.Checkbox
	Option   = model.Option
)

// Set aliases binding.Set.
type Set = binding.Set

// Container aliases binding.Container.
type Container = binding.Container

// SetLogger routes the library's logs to l. A nil logger silences them,
// which is the default.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// TargetOf adapts v into a model.Target: a Target is returned as is, a
// map[string]any becomes model.Values and a struct pointer is read through
// model.Struct.
func TargetOf(v any) (model.Target, error) {
	switch t := v.(type) {
	case nil:
		return nil, binding.ErrNilTarget
	case model.Target:
		return t, nil
	case map[string]any:
		return model.Values(t), nil
	default:
		target, err := model.Struct(v)
		if err != nil {
			return nil, fmt.Errorf("uibind: target %T: %w", v, err)
		}
		return target, nil
	}
}

// Bind creates widgets for descriptors over target (see TargetOf) and
// appends them to container.
func Bind(container Container, target any, descriptors []Descriptor, options ...binding.Option) (*Set, error) {
	if container == nil {
		return binding.Bind(nil, nil, descriptors, options...)
	}
	t, err := TargetOf(target)
	if err != nil {
		return nil, err
	}
	return binding.Bind(container, t, descriptors, options...)
}

// Push refreshes widget displays from data without writing the target or
// running change callbacks.
func Push(set *Set, data map[string]any) {
	binding.Push(set, data)
}
