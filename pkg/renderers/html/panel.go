package html

import "github.com/goliatone/go-uibind/pkg/widgets"

// Panel is a slot of the document that collects widget elements in append
// order.
type Panel struct {
	id    string
	elems []widgets.Element
}

// ID returns the element id of the panel.
func (p *Panel) ID() string { return p.id }

// Append adds a widget element.
func (p *Panel) Append(el widgets.Element) {
	if el == nil {
		return
	}
	p.elems = append(p.elems, el)
}

// Len reports the number of appended elements.
func (p *Panel) Len() int { return len(p.elems) }

func (p *Panel) context() map[string]any {
	items := make([]map[string]any, 0, len(p.elems))
	for _, el := range p.elems {
		items = append(items, widgetContext(el.View()))
	}
	return map[string]any{
		"id":      p.id,
		"widgets": items,
	}
}
