package widgets

import "github.com/goliatone/go-uibind/pkg/model"

// Element is the renderable handle of a widget. Containers only read it;
// the widget stays owned by the binding that created it.
type Element interface {
	ID() string
	View() View
}

// View is a snapshot of a widget's displayed state.
type View struct {
	ID    string
	Key   string
	Label string
	Type  model.WidgetType

	// Slider state, in scale positions (value/step).
	Display  string
	Position float64
	Min      float64
	Max      float64

	// Checkbox state.
	Checked bool

	// Option state. Selected is -1 when nothing is selected.
	Selected int
	Options  []string
}
