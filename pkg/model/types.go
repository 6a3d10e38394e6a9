package model

import "strings"

// WidgetType names a widget variant in declarative documents.
type WidgetType string

const (
	WidgetSlider   WidgetType = "slider"
	WidgetCheckbox WidgetType = "checkbox"
	WidgetOption   WidgetType = "option"
)

// Widget is implemented by the three widget variants only.
type Widget interface {
	Type() WidgetType
	sealed()
}

// Slider binds a numeric field to a range control. Zero values select the
// defaults: Max 1, Step 1, UIMult 1. UIPrecision falls back to Precision
// when nil.
type Slider struct {
	Min         float64
	Max         float64
	Step        float64
	Precision   int
	UIPrecision *int
	UIMult      float64
}

// Checkbox binds a boolean field.
type Checkbox struct{}

// Option binds an integer field to a select control. The bound value is
// the zero-based index into Options, never the label.
type Option struct {
	Options []string
}

func (Slider) Type() WidgetType   { return WidgetSlider }
func (Checkbox) Type() WidgetType { return WidgetCheckbox }
func (Option) Type() WidgetType   { return WidgetOption }

func (Slider) sealed()   {}
func (Checkbox) sealed() {}
func (Option) sealed()   {}

// Normalize returns a copy with defaults applied.
func (s Slider) Normalize() Slider {
	out := s
	if out.Step == 0 {
		out.Step = 1
	}
	if out.Max == 0 {
		out.Max = 1
	}
	if out.UIMult == 0 {
		out.UIMult = 1
	}
	if out.Precision < 0 {
		out.Precision = 0
	}
	uiPrecision := out.Precision
	if s.UIPrecision != nil && *s.UIPrecision >= 0 {
		uiPrecision = *s.UIPrecision
	}
	out.UIPrecision = &uiPrecision
	return out
}

// Descriptor describes one bindable field.
type Descriptor struct {
	// Key names the field on the bound target. Keys are unique within one
	// bind call.
	Key string
	// Name is the display label; DisplayName falls back to Key.
	Name string
	// Widget selects the variant and carries its parameters.
	Widget Widget
	// Change runs after every accepted edit. Nil is a no-op.
	Change func()
}

// DisplayName returns Name, or Key when Name is blank.
func (d Descriptor) DisplayName() string {
	if name := strings.TrimSpace(d.Name); name != "" {
		return name
	}
	return d.Key
}

// Precision returns an int pointer, handy for Slider.UIPrecision literals.
func Precision(p int) *int {
	return &p
}
