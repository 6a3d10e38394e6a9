package binding

import (
	"iter"

	"github.com/goliatone/go-uibind/internal/logging"
	"github.com/goliatone/go-uibind/pkg/widgets"
)

// Set is the key -> widget mapping produced by one Bind call. Iteration
// follows descriptor order.
type Set struct {
	keys    []string
	widgets map[string]*widgets.Widget
}

func newSet(capacity int) *Set {
	return &Set{
		keys:    make([]string, 0, capacity),
		widgets: make(map[string]*widgets.Widget, capacity),
	}
}

func (s *Set) add(key string, w *widgets.Widget) {
	s.keys = append(s.keys, key)
	s.widgets[key] = w
}

// Len reports the number of bound widgets.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns the bound keys in descriptor order.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.keys...)
}

// Get returns the widget bound to key.
func (s *Set) Get(key string) (*widgets.Widget, bool) {
	if s == nil {
		return nil, false
	}
	w, ok := s.widgets[key]
	return w, ok
}

// All iterates key/widget pairs in descriptor order.
func (s *Set) All() iter.Seq2[string, *widgets.Widget] {
	return func(yield func(string, *widgets.Widget) bool) {
		if s == nil {
			return
		}
		for _, key := range s.keys {
			if !yield(key, s.widgets[key]) {
				return
			}
		}
	}
}

// Push refreshes the displays of the widgets whose keys appear in data.
// Change callbacks do not run and the target is not written. Keys missing
// from the set are ignored; values a widget cannot display are skipped and
// logged.
func (s *Set) Push(data map[string]any) {
	if s == nil || len(data) == 0 {
		return
	}
	logger := logging.Logger()
	for _, key := range s.keys {
		value, ok := data[key]
		if !ok {
			continue
		}
		if err := s.widgets[key].UpdateValue(value); err != nil {
			logger.Warn("binding: push skipped", "key", key, "error", err)
			continue
		}
		logger.Debug("binding: pushed", "key", key, "value", value)
	}
}

// Push is Set.Push as a function, mirroring Bind.
func Push(set *Set, data map[string]any) {
	set.Push(data)
}
