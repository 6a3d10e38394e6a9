package html

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const templateExt = ".tmpl"

// engine is a pongo2 template set with a parsed-template cache.
type engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

func defaultTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

func newEngine(files fs.FS) (*engine, error) {
	if files == nil {
		files = defaultTemplates()
	}
	if err := registerFilters(); err != nil {
		return nil, fmt.Errorf("html: register filters: %w", err)
	}
	return &engine{
		set:       pongo2.NewSet("uibind-html", pongo2.NewFSLoader(files)),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

func (e *engine) render(name string, data pongo2.Context, w io.Writer) error {
	if !strings.HasSuffix(name, templateExt) {
		name += templateExt
	}
	tmpl, err := e.template(name)
	if err != nil {
		return err
	}
	if err := tmpl.ExecuteWriter(data, w); err != nil {
		return fmt.Errorf("html: execute template %q: %w", name, err)
	}
	return nil
}

func (e *engine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("html: load template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}
