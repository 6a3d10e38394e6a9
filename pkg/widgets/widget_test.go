package widgets

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uibind/pkg/model"
)

func TestSlider_DisplayUsesStepAndMultiplier(t *testing.T) {
	spec := model.Slider{Max: 1, Step: 0.01, UIMult: 100, UIPrecision: model.Precision(0)}
	w, err := New(Config{ID: "w0", Key: "alpha", Label: "alpha"}, spec, 0.25, nil)
	if err != nil {
		t.Fatalf("new slider: %v", err)
	}

	view := w.View()
	if view.Display != "25" {
		t.Fatalf("display: want %q, got %q", "25", view.Display)
	}
	if view.Position != 25 || view.Min != 0 || view.Max != 100 {
		t.Fatalf("unexpected positions: %+v", view)
	}
}

func TestToFixed(t *testing.T) {
	cases := []struct {
		x      float64
		digits int
		want   string
	}{
		{x: 2.5, digits: 0, want: "3"},
		{x: -2.5, digits: 0, want: "-3"},
		{x: 0.125, digits: 2, want: "0.13"},
		{x: 1.005, digits: 2, want: "1.00"},
		{x: 0.001, digits: 2, want: "0.00"},
		{x: -0.001, digits: 2, want: "-0.00"},
		{x: math.Copysign(0, -1), digits: 1, want: "0.0"},
		{x: 1234.5678, digits: 3, want: "1234.568"},
		{x: 0.05, digits: 4, want: "0.0500"},
		{x: 42, digits: 0, want: "42"},
	}
	for _, tc := range cases {
		if got := toFixed(tc.x, tc.digits); got != tc.want {
			t.Fatalf("toFixed(%v, %d): want %q, got %q", tc.x, tc.digits, tc.want, got)
		}
	}
}

func TestSlider_InputEmitsScaledValue(t *testing.T) {
	var emitted []any
	spec := model.Slider{Max: 10, Step: 0.1, Precision: 1}
	w, err := New(Config{Key: "x"}, spec, 0, func(v any) error {
		emitted = append(emitted, v)
		return nil
	})
	if err != nil {
		t.Fatalf("new slider: %v", err)
	}

	if err := w.Input(37); err != nil {
		t.Fatalf("input: %v", err)
	}
	if err := w.Input("5"); err != nil {
		t.Fatalf("input string: %v", err)
	}

	step := 0.1
	want := []any{37 * step, 5 * step}
	if diff := cmp.Diff(want, emitted); diff != "" {
		t.Fatalf("emitted mismatch (-want +got):\n%s", diff)
	}
	if got := w.View().Display; got != "0.5" {
		t.Fatalf("display: want 0.5, got %q", got)
	}
}

func TestSlider_InputClampsToRange(t *testing.T) {
	var last any
	w, err := New(Config{Key: "x"}, model.Slider{Max: 300}, 0, func(v any) error {
		last = v
		return nil
	})
	if err != nil {
		t.Fatalf("new slider: %v", err)
	}
	if err := w.Input(900); err != nil {
		t.Fatalf("input: %v", err)
	}
	if last != 300.0 {
		t.Fatalf("want clamp to 300, got %v", last)
	}
	if err := w.Input("nope"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestWidget_RejectedEditKeepsDisplay(t *testing.T) {
	boom := errors.New("boom")
	w, err := New(Config{Key: "x"}, model.Slider{Max: 10}, 2, func(any) error { return boom })
	if err != nil {
		t.Fatalf("new slider: %v", err)
	}
	if err := w.Input(7); !errors.Is(err, boom) {
		t.Fatalf("expected edit error, got %v", err)
	}
	if got := w.View().Display; got != "2" {
		t.Fatalf("display should stay at 2, got %q", got)
	}
	if w.State() != Idle {
		t.Fatalf("widget should return to idle, got %s", w.State())
	}
}

func TestWidget_ReentrantInputIsBusy(t *testing.T) {
	var w *Widget
	var inner error
	w, err := New(Config{Key: "flag"}, model.Checkbox{}, false, func(any) error {
		if w.State() != Updating {
			t.Fatalf("expected updating state during edit, got %s", w.State())
		}
		inner = w.Input(false)
		return nil
	})
	if err != nil {
		t.Fatalf("new checkbox: %v", err)
	}
	if err := w.Input(true); err != nil {
		t.Fatalf("input: %v", err)
	}
	if !errors.Is(inner, ErrBusy) {
		t.Fatalf("expected ErrBusy for reentrant input, got %v", inner)
	}
	if !w.View().Checked {
		t.Fatalf("outer edit should win")
	}
}

func TestCheckbox_InputAndPush(t *testing.T) {
	var last any
	w, err := New(Config{Key: "flag"}, model.Checkbox{}, true, func(v any) error {
		last = v
		return nil
	})
	if err != nil {
		t.Fatalf("new checkbox: %v", err)
	}
	if !w.View().Checked {
		t.Fatalf("expected initial checked state")
	}
	if err := w.Input(false); err != nil {
		t.Fatalf("input: %v", err)
	}
	if last != false || w.View().Checked {
		t.Fatalf("expected unchecked after edit, last=%v", last)
	}
	if err := w.Input("yes"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := w.UpdateValue(1); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !w.View().Checked {
		t.Fatalf("expected truthy push to check the box")
	}
}

func TestOption_IndexSemantics(t *testing.T) {
	var last any
	w, err := New(Config{Key: "mode", OptionLabels: []string{"", "Beta"}}, model.Option{Options: []string{"a", "b", "c"}}, 0, func(v any) error {
		last = v
		return nil
	})
	if err != nil {
		t.Fatalf("new option: %v", err)
	}
	if err := w.Input(2); err != nil {
		t.Fatalf("input: %v", err)
	}
	if last != 2 {
		t.Fatalf("want index 2, got %#v", last)
	}

	view := w.View()
	if diff := cmp.Diff([]string{"a", "Beta", "c"}, view.Options); diff != "" {
		t.Fatalf("option labels mismatch (-want +got):\n%s", diff)
	}
	if view.Selected != 2 {
		t.Fatalf("selected: want 2, got %d", view.Selected)
	}

	if err := w.Input(3); !errors.Is(err, ErrOptionRange) {
		t.Fatalf("expected ErrOptionRange, got %v", err)
	}
	if err := w.UpdateValue(9); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := w.View().Selected; got != -1 {
		t.Fatalf("out of range push should clear selection, got %d", got)
	}
}

func TestNew_RequiresVariant(t *testing.T) {
	if _, err := New(Config{Key: "x"}, nil, nil, nil); !errors.Is(err, ErrNoVariant) {
		t.Fatalf("expected ErrNoVariant, got %v", err)
	}
}
