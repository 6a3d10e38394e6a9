package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-uibind/pkg/model"
	"github.com/goliatone/go-uibind/pkg/widgets"
)

// Field is one declared widget of a panel.
type Field struct {
	Key    string
	Name   string
	Widget model.Widget
}

// Panel is an ordered field list loaded from Source.
type Panel struct {
	ID     string
	Title  string
	Source string
	Fields []Field
}

// Descriptors turns the panel into bind descriptors sharing one change
// callback.
func (p Panel) Descriptors(change func()) []model.Descriptor {
	out := make([]model.Descriptor, 0, len(p.Fields))
	for _, field := range p.Fields {
		out = append(out, model.Descriptor{
			Key:    field.Key,
			Name:   field.Name,
			Widget: field.Widget,
			Change: change,
		})
	}
	return out
}

// Store holds the panels of every loaded document.
type Store struct {
	panels map[string]Panel
}

// Option configures LoadFS.
type Option func(*loader)

type loader struct {
	registry *widgets.Registry
}

// WithRegistry resolves field types through reg instead of the built-in
// registry.
func WithRegistry(reg *widgets.Registry) Option {
	return func(l *loader) {
		if reg != nil {
			l.registry = reg
		}
	}
}

// LoadFS walks the provided filesystem and parses JSON/YAML panel files.
// When fsys is nil or no panel files are present, the returned store is
// empty.
func LoadFS(fsys fs.FS, options ...Option) (*Store, error) {
	l := &loader{}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}
	if l.registry == nil {
		l.registry = widgets.NewRegistry()
	}

	store := &Store{panels: make(map[string]Panel)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawID, raw := range doc.Panels {
			id := strings.TrimSpace(rawID)
			if id == "" {
				return fmt.Errorf("schema: file %s defines an empty panel id", path)
			}
			if existing, exists := store.panels[id]; exists {
				return fmt.Errorf("%w: %q (files %s and %s)", ErrDuplicatePanel, id, existing.Source, path)
			}
			panel, err := l.normalisePanel(raw, id, path)
			if err != nil {
				return err
			}
			store.panels[id] = panel
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Panel returns the panel registered under id.
func (s *Store) Panel(id string) (Panel, bool) {
	if s == nil {
		return Panel{}, false
	}
	panel, ok := s.panels[strings.TrimSpace(id)]
	return panel, ok
}

// IDs returns the loaded panel ids, sorted.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.panels))
	for id := range s.panels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any panels.
func (s *Store) Empty() bool {
	return s == nil || len(s.panels) == 0
}

type documentFile struct {
	Panels map[string]panelFile `json:"panels" yaml:"panels"`
}

type panelFile struct {
	Title  string           `json:"title" yaml:"title"`
	Fields []map[string]any `json:"fields" yaml:"fields"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("schema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("schema: parse %s: invalid JSON or YAML", source)
}

func (l *loader) normalisePanel(raw panelFile, id, source string) (Panel, error) {
	panel := Panel{
		ID:     id,
		Title:  strings.TrimSpace(raw.Title),
		Source: source,
		Fields: make([]Field, 0, len(raw.Fields)),
	}
	seen := make(map[string]struct{}, len(raw.Fields))
	for idx, entry := range raw.Fields {
		key := stringParam(entry, "key")
		if key == "" {
			return Panel{}, fmt.Errorf("schema: panel %q (file %s) field %d has no key", id, source, idx)
		}
		if _, dup := seen[key]; dup {
			return Panel{}, fmt.Errorf("%w: panel %q (file %s) key %q", ErrDuplicateKey, id, source, key)
		}
		seen[key] = struct{}{}

		typeName := stringParam(entry, "type")
		params := make(widgets.Params, len(entry))
		for name, value := range entry {
			switch name {
			case "key", "name", "type":
				continue
			}
			params[name] = value
		}
		widget, err := l.registry.Build(typeName, params)
		if err != nil {
			return Panel{}, fmt.Errorf("schema: panel %q (file %s) field %q: %w", id, source, key, err)
		}
		panel.Fields = append(panel.Fields, Field{
			Key:    key,
			Name:   stringParam(entry, "name"),
			Widget: widget,
		})
	}
	return panel, nil
}

func stringParam(entry map[string]any, name string) string {
	value, ok := entry[name]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(value))
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
