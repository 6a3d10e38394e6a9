package widgets

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-uibind/pkg/model"
)

// Alias identifiers accepted next to the canonical variant names.
const (
	AliasRange  = "range"
	AliasToggle = "toggle"
	AliasSelect = "select"
)

// Params carries the raw, type-specific parameters of a declarative field
// (min, max, step, precision, uiPrecision, uiMult, options).
type Params map[string]any

// Factory builds a widget variant from raw parameters.
type Factory func(params Params) (model.Widget, error)

// Registry maps widget type names from declarative documents onto variant
// factories. Unknown names fail instead of silently dropping the field.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry constructs a registry with the slider, checkbox and option
// factories plus their aliases registered.
func NewRegistry() *Registry {
	reg := &Registry{factories: make(map[string]Factory)}
	reg.registerBuiltins()
	return reg
}

// Register adds a factory under name. Names are case-insensitive and must
// be unique.
func (r *Registry) Register(name string, factory Factory) error {
	if r == nil {
		return fmt.Errorf("widgets: registry is nil")
	}
	trimmed := normalizeName(name)
	if trimmed == "" {
		return fmt.Errorf("widgets: type name is required")
	}
	if factory == nil {
		return fmt.Errorf("widgets: factory for %q is required", trimmed)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[trimmed]; exists {
		return fmt.Errorf("widgets: type %q already registered", trimmed)
	}
	r.factories[trimmed] = factory
	return nil
}

// Build resolves name and runs its factory.
func (r *Registry) Build(name string, params Params) (model.Widget, error) {
	trimmed := normalizeName(name)
	if r == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, trimmed)
	}
	r.mu.RLock()
	factory, ok := r.factories[trimmed]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownType, trimmed, strings.Join(r.Names(), ", "))
	}
	widget, err := factory(params)
	if err != nil {
		return nil, fmt.Errorf("widgets: build %q: %w", trimmed, err)
	}
	return widget, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[normalizeName(name)]
	return ok
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) registerBuiltins() {
	slider := func(params Params) (model.Widget, error) { return SliderFromParams(params) }
	checkbox := func(Params) (model.Widget, error) { return model.Checkbox{}, nil }
	option := func(params Params) (model.Widget, error) { return OptionFromParams(params) }

	for name, factory := range map[string]Factory{
		string(model.WidgetSlider):   slider,
		AliasRange:                   slider,
		string(model.WidgetCheckbox): checkbox,
		AliasToggle:                  checkbox,
		string(model.WidgetOption):   option,
		AliasSelect:                  option,
	} {
		r.factories[name] = factory
	}
}

// SliderFromParams reads the numeric slider parameters. Absent keys keep
// their zero value so Slider.Normalize applies the defaults.
func SliderFromParams(params Params) (model.Slider, error) {
	var spec model.Slider
	for key, dst := range map[string]*float64{
		"min":    &spec.Min,
		"max":    &spec.Max,
		"step":   &spec.Step,
		"uiMult": &spec.UIMult,
	} {
		raw, ok := params[key]
		if !ok || raw == nil {
			continue
		}
		f, ok := model.ToFloat(raw)
		if !ok {
			return model.Slider{}, fmt.Errorf("slider %s: expected number, got %T", key, raw)
		}
		*dst = f
	}
	if spec.Step < 0 {
		return model.Slider{}, fmt.Errorf("slider step must be positive, got %v", spec.Step)
	}
	if raw, ok := params["precision"]; ok && raw != nil {
		p, ok := model.ToInt(raw)
		if !ok {
			return model.Slider{}, fmt.Errorf("slider precision: expected integer, got %T", raw)
		}
		spec.Precision = p
	}
	if raw, ok := params["uiPrecision"]; ok && raw != nil {
		p, ok := model.ToInt(raw)
		if !ok {
			return model.Slider{}, fmt.Errorf("slider uiPrecision: expected integer, got %T", raw)
		}
		spec.UIPrecision = model.Precision(p)
	}
	return spec, nil
}

// OptionFromParams reads the ordered option labels.
func OptionFromParams(params Params) (model.Option, error) {
	raw, ok := params["options"]
	if !ok || raw == nil {
		return model.Option{}, fmt.Errorf("option: options list is required")
	}
	switch list := raw.(type) {
	case []string:
		return model.Option{Options: append([]string(nil), list...)}, nil
	case []any:
		out := make([]string, 0, len(list))
		for idx, entry := range list {
			label, ok := entry.(string)
			if !ok {
				return model.Option{}, fmt.Errorf("option: entry %d is %T, not a string", idx, entry)
			}
			out = append(out, label)
		}
		return model.Option{Options: out}, nil
	default:
		return model.Option{}, fmt.Errorf("option: options must be a list, got %T", raw)
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
