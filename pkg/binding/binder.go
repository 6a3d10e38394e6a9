package binding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-uibind/internal/logging"
	"github.com/goliatone/go-uibind/pkg/labels"
	"github.com/goliatone/go-uibind/pkg/model"
	"github.com/goliatone/go-uibind/pkg/widgets"
)

// Container receives the renderable handles of bound widgets, in
// descriptor order.
type Container interface {
	Append(el widgets.Element)
}

// ContainerFunc adapts a function into a Container.
type ContainerFunc func(el widgets.Element)

// Append calls the underlying function.
func (fn ContainerFunc) Append(el widgets.Element) {
	fn(el)
}

// Finder looks containers up by selector. It returns nil when nothing
// matches.
type Finder interface {
	Find(selector string) Container
}

// Binder materialises descriptor lists into widget sets.
type Binder struct {
	localizer labels.Localizer
	idPrefix  string
	nextID    int
}

// New constructs a Binder.
func New(options ...Option) *Binder {
	b := &Binder{
		localizer: labels.Identity,
		idPrefix:  defaultIDPrefix,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Bind is New(options...).Bind(container, target, descriptors).
func Bind(container Container, target model.Target, descriptors []model.Descriptor, options ...Option) (*Set, error) {
	return New(options...).Bind(container, target, descriptors)
}

// Bind creates one widget per descriptor, initialised from the target's
// current field values, appends each widget handle to container and returns
// them keyed by descriptor key. An accepted edit writes the target field and
// then runs the descriptor's Change callback.
//
// A nil container is a no-op. Configuration errors (nil target, empty or
// duplicate keys, missing variants, keys the target does not expose) fail
// before anything is appended. The target is only read here.
func (b *Binder) Bind(container Container, target model.Target, descriptors []model.Descriptor) (*Set, error) {
	logger := logging.Logger()
	if container == nil {
		logger.Debug("binding: no container, skipping bind", "descriptors", len(descriptors))
		return newSet(0), nil
	}
	if target == nil {
		return nil, ErrNilTarget
	}

	seen := make(map[string]struct{}, len(descriptors))
	built := make([]*widgets.Widget, 0, len(descriptors))
	for idx, desc := range descriptors {
		key := strings.TrimSpace(desc.Key)
		if key == "" {
			return nil, fmt.Errorf("%w (descriptor %d)", ErrEmptyKey, idx)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		seen[key] = struct{}{}
		desc.Key = key

		initial, ok := target.Get(key)
		if !ok {
			return nil, fmt.Errorf("binding: field %q: %w", key, model.ErrUnknownField)
		}

		w, err := widgets.New(b.widgetConfig(key, desc), desc.Widget, initial, editHandler(target, key, desc.Change))
		if err != nil {
			return nil, fmt.Errorf("binding: field %q: %w", key, err)
		}
		built = append(built, w)
	}

	set := newSet(len(built))
	for _, w := range built {
		container.Append(w.Elem())
		set.add(w.Key(), w)
		logger.Debug("binding: bound widget", "key", w.Key(), "type", w.Type(), "id", w.ID())
	}
	return set, nil
}

// SliderSetup configures a standalone slider.
type SliderSetup struct {
	// Name defaults to the selector without its leading '#' or '.'.
	Name  string
	Value float64
	Spec  model.Slider
	// Slide receives the step-scaled value of every edit.
	Slide func(value float64)
}

// SetupSlider is New(options...).SetupSlider(finder, selector, setup).
func SetupSlider(finder Finder, selector string, setup SliderSetup, options ...Option) (*widgets.Widget, error) {
	return New(options...).SetupSlider(finder, selector, setup)
}

// SetupSlider appends a slider to the container found under selector. An
// unknown selector is a no-op that returns a nil widget and no error.
func (b *Binder) SetupSlider(finder Finder, selector string, setup SliderSetup) (*widgets.Widget, error) {
	var parent Container
	if finder != nil {
		parent = finder.Find(selector)
	}
	if parent == nil {
		logging.Logger().Debug("binding: selector matched nothing", "selector", selector)
		return nil, nil
	}

	name := strings.TrimSpace(setup.Name)
	if name == "" && len(selector) > 1 {
		name = selector[1:]
	}
	slide := setup.Slide
	w, err := widgets.New(b.widgetConfig(name, model.Descriptor{Key: name, Name: name}), setup.Spec, setup.Value, func(value any) error {
		if slide != nil {
			f, _ := model.ToFloat(value)
			slide(f)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("binding: slider %q: %w", selector, err)
	}
	parent.Append(w.Elem())
	return w, nil
}

func (b *Binder) widgetConfig(key string, desc model.Descriptor) widgets.Config {
	cfg := widgets.Config{
		ID:    b.idPrefix + strconv.Itoa(b.nextID),
		Key:   key,
		Label: b.localizer.Label(desc.DisplayName()),
	}
	b.nextID++
	if opt, ok := desc.Widget.(model.Option); ok {
		cfg.OptionLabels = make([]string, len(opt.Options))
		for i, label := range opt.Options {
			cfg.OptionLabels[i] = b.localizer.Label(label)
		}
	}
	return cfg
}

func editHandler(target model.Target, key string, change func()) widgets.EditFunc {
	return func(value any) error {
		if err := target.Set(key, value); err != nil {
			return fmt.Errorf("binding: write %q: %w", key, err)
		}
		if change != nil {
			change()
		}
		return nil
	}
}
