package html

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uibind/pkg/binding"
)

// Document is an HTML page made of named panels.
type Document struct {
	title     string
	lang      string
	theme     *theme.RendererConfig
	templates fs.FS
	engine    *engine

	order  []string
	panels map[string]*Panel
}

var _ binding.Finder = (*Document)(nil)
var _ binding.Container = (*Panel)(nil)

// NewDocument constructs an empty document.
func NewDocument(options ...Option) (*Document, error) {
	doc := &Document{
		lang:   "en",
		panels: make(map[string]*Panel),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(doc)
	}
	eng, err := newEngine(doc.templates)
	if err != nil {
		return nil, err
	}
	doc.engine = eng
	return doc, nil
}

// Slot returns the panel for selector, creating it on first use. Panels
// render in creation order.
func (d *Document) Slot(selector string) (*Panel, error) {
	id, err := slotID(selector)
	if err != nil {
		return nil, err
	}
	if panel, ok := d.panels[id]; ok {
		return panel, nil
	}
	panel := &Panel{id: id}
	d.panels[id] = panel
	d.order = append(d.order, id)
	return panel, nil
}

// Find returns the existing panel for selector, or nil.
func (d *Document) Find(selector string) binding.Container {
	if d == nil {
		return nil
	}
	id, err := slotID(selector)
	if err != nil {
		return nil
	}
	panel, ok := d.panels[id]
	if !ok {
		return nil
	}
	return panel
}

// Panels returns the panels in render order.
func (d *Document) Panels() []*Panel {
	out := make([]*Panel, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.panels[id])
	}
	return out
}

// Render writes the page with the current widget values.
func (d *Document) Render(w io.Writer) error {
	if d == nil || d.engine == nil {
		return ErrNilDocument
	}
	panels := make([]map[string]any, 0, len(d.order))
	for _, id := range d.order {
		panels = append(panels, d.panels[id].context())
	}
	data := pongo2.Context{
		"title":       d.title,
		"lang":        d.lang,
		"theme":       themeContext(d.theme),
		"stylesheets": stylesheetURLs(d.theme, []string{StylesheetAsset}),
		"panels":      panels,
	}
	if err := d.engine.render("document", data, w); err != nil {
		return fmt.Errorf("html: render document: %w", err)
	}
	return nil
}

// String renders the page, returning the error text on failure.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return err.Error()
	}
	return b.String()
}

func slotID(selector string) (string, error) {
	selector = strings.TrimSpace(selector)
	if len(selector) < 2 || selector[0] != '#' {
		return "", fmt.Errorf("%w: %q", ErrInvalidSelector, selector)
	}
	return selector[1:], nil
}
