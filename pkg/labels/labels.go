// Package labels resolves widget display names through a read-only
// localisation table keyed by "ui-" + name. Tables are built once at startup
// from query-string style parameters or from per-locale catalogs and then
// handed to the binder explicitly.
package labels

import (
	"net/url"
	"strings"
)

// Prefix is prepended to a display name to form its table key.
const Prefix = "ui-"

// Localizer maps a raw display name onto the string shown to the user.
type Localizer interface {
	Label(name string) string
}

// LocalizerFunc adapts a function into a Localizer.
type LocalizerFunc func(name string) string

// Label calls the underlying function.
func (fn LocalizerFunc) Label(name string) string {
	return fn(name)
}

// Identity returns every name unchanged.
var Identity Localizer = LocalizerFunc(func(name string) string { return name })

// Table is a parameter table. Only "ui-" keys take part in label lookup.
type Table map[string]string

// Label returns t["ui-"+name], or name when the entry is missing or empty.
func (t Table) Label(name string) string {
	if t == nil {
		return name
	}
	if value := t[Prefix+name]; value != "" {
		return value
	}
	return name
}

// ParseQuery builds a table from a "key=value&key=value" string, with or
// without the leading "?". Entries from seed are copied first so query
// parameters override them. Keys and values are percent-decoded; a pair
// that fails to decode is kept verbatim.
func ParseQuery(raw string, seed map[string]string) Table {
	params := make(Table, len(seed))
	for key, value := range seed {
		params[key] = value
	}

	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	if raw == "" {
		return params
	}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, rest, _ := strings.Cut(pair, "=")
		value, _, _ := strings.Cut(rest, "=")
		params[decode(key)] = decode(value)
	}
	return params
}

func decode(component string) string {
	decoded, err := url.PathUnescape(component)
	if err != nil {
		return component
	}
	return decoded
}

// Chain tries each localizer in turn and returns the first result that
// differs from name.
func Chain(localizers ...Localizer) Localizer {
	return LocalizerFunc(func(name string) string {
		for _, l := range localizers {
			if l == nil {
				continue
			}
			if label := l.Label(name); label != name {
				return label
			}
		}
		return name
	})
}
