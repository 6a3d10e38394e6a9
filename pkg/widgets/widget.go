package widgets

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/goliatone/go-uibind/pkg/model"
)

// State is the lifecycle state of a widget.
type State int

const (
	// Idle widgets accept user input and pushes.
	Idle State = iota
	// Updating widgets are applying an edit or a push.
	Updating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Updating:
		return "updating"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// EditFunc receives the normalised value of an accepted user edit. A
// non-nil error rejects the edit and leaves the display untouched.
type EditFunc func(value any) error

// Config carries the identity and display strings of a widget.
type Config struct {
	ID    string
	Key   string
	Label string
	// OptionLabels overrides the displayed option labels of an Option
	// widget, index for index. Missing entries fall back to the raw label.
	OptionLabels []string
}

// Widget is a live control bound to one field.
type Widget struct {
	cfg    Config
	kind   model.Widget
	ctrl   control
	state  State
	onEdit EditFunc
}

type control interface {
	// edit turns a raw input event into the emitted value plus a commit
	// func that applies it to the display.
	edit(raw any) (value any, commit func(), err error)
	push(value any) error
	value() any
	fill(*View)
}

// New materialises the variant described by kind with initial as its
// displayed value. onEdit may be nil.
func New(cfg Config, kind model.Widget, initial any, onEdit EditFunc) (*Widget, error) {
	w := &Widget{cfg: cfg, kind: kind, onEdit: onEdit}
	switch spec := kind.(type) {
	case model.Slider:
		w.ctrl = newSliderControl(spec, initial)
	case model.Checkbox:
		w.ctrl = &checkboxControl{checked: model.Truthy(initial)}
	case model.Option:
		w.ctrl = newOptionControl(spec, cfg.OptionLabels, initial)
	case nil:
		return nil, ErrNoVariant
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownType, kind)
	}
	return w, nil
}

// ID returns the widget identifier.
func (w *Widget) ID() string { return w.cfg.ID }

// Key returns the bound field key.
func (w *Widget) Key() string { return w.cfg.Key }

// Type returns the widget variant name.
func (w *Widget) Type() model.WidgetType { return w.kind.Type() }

// State reports the current lifecycle state.
func (w *Widget) State() State { return w.state }

// Elem returns the renderable handle.
func (w *Widget) Elem() Element { return w }

// Value returns the displayed value in target units.
func (w *Widget) Value() any { return w.ctrl.value() }

// View snapshots the displayed state.
func (w *Widget) View() View {
	v := View{
		ID:       w.cfg.ID,
		Key:      w.cfg.Key,
		Label:    w.cfg.Label,
		Type:     w.kind.Type(),
		Selected: -1,
	}
	w.ctrl.fill(&v)
	return v
}

// Input applies a user edit: the raw event value is normalised, handed to
// the edit func and then shown.
func (w *Widget) Input(raw any) error {
	if w.state != Idle {
		return ErrBusy
	}
	w.state = Updating
	defer func() { w.state = Idle }()

	value, commit, err := w.ctrl.edit(raw)
	if err != nil {
		return fmt.Errorf("%s %q: %w", w.kind.Type(), w.cfg.Key, err)
	}
	if w.onEdit != nil {
		if err := w.onEdit(value); err != nil {
			return err
		}
	}
	commit()
	return nil
}

// UpdateValue pushes an external value into the display. The edit func is
// not called.
func (w *Widget) UpdateValue(value any) error {
	if w.state != Idle {
		return ErrBusy
	}
	w.state = Updating
	defer func() { w.state = Idle }()

	if err := w.ctrl.push(value); err != nil {
		return fmt.Errorf("%s %q: %w", w.kind.Type(), w.cfg.Key, err)
	}
	return nil
}

type sliderControl struct {
	spec     model.Slider
	min      float64
	max      float64
	position float64
}

func newSliderControl(spec model.Slider, initial any) *sliderControl {
	spec = spec.Normalize()
	c := &sliderControl{
		spec: spec,
		min:  spec.Min / spec.Step,
		max:  spec.Max / spec.Step,
	}
	value, _ := model.ToFloat(initial)
	c.position = c.snap(value / spec.Step)
	return c
}

func (c *sliderControl) edit(raw any) (any, func(), error) {
	f, ok := model.ToFloat(raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, nil, fmt.Errorf("%w: slider position %v", ErrInvalidInput, raw)
	}
	position := c.clamp(math.Trunc(f))
	return position * c.spec.Step, func() { c.position = position }, nil
}

func (c *sliderControl) push(value any) error {
	f, ok := model.ToFloat(value)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %T", model.ErrValueType, value)
	}
	c.position = c.snap(f / c.spec.Step)
	return nil
}

func (c *sliderControl) value() any {
	return c.position * c.spec.Step
}

func (c *sliderControl) fill(v *View) {
	v.Display = c.display()
	v.Position = c.position
	v.Min = c.min
	v.Max = c.max
}

// display formats the scaled value; it never feeds back into the emitted
// value.
func (c *sliderControl) display() string {
	return toFixed(c.position*c.spec.Step*c.spec.UIMult, *c.spec.UIPrecision)
}

func (c *sliderControl) snap(position float64) float64 {
	return c.clamp(math.Round(position))
}

func (c *sliderControl) clamp(position float64) float64 {
	if c.max >= c.min {
		position = math.Max(c.min, math.Min(c.max, position))
	}
	return position
}

// toFixed renders x with exactly digits fraction digits. Ties on the exact
// binary value round away from zero, and negative values keep their sign
// even when they round to zero. Only -0 itself prints unsigned.
func toFixed(x float64, digits int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) || digits < 0 {
		return strconv.FormatFloat(x, 'f', digits, 64)
	}

	r := new(big.Rat).SetFloat64(math.Abs(x))
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom())

	out := n.String()
	if digits > 0 {
		if len(out) <= digits {
			out = strings.Repeat("0", digits-len(out)+1) + out
		}
		out = out[:len(out)-digits] + "." + out[len(out)-digits:]
	}
	if x < 0 {
		out = "-" + out
	}
	return out
}
