package labels

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Catalog holds one Table per locale and picks the best match for a list
// of user preferences (Accept-Language values or bare tags).
type Catalog struct {
	tags    []language.Tag
	tables  []Table
	matcher language.Matcher
}

// NewCatalog builds a catalog from locale -> table. The fallback locale is
// used when no preference matches; it must be one of the keys.
func NewCatalog(fallback string, tables map[string]Table) (*Catalog, error) {
	fallback = strings.TrimSpace(fallback)
	if _, ok := tables[fallback]; !ok {
		return nil, fmt.Errorf("labels: fallback locale %q has no table", fallback)
	}

	locales := make([]string, 0, len(tables))
	for locale := range tables {
		if locale != fallback {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	locales = append([]string{fallback}, locales...)

	c := &Catalog{}
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("labels: locale %q: %w", locale, err)
		}
		c.tags = append(c.tags, tag)
		c.tables = append(c.tables, tables[locale])
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Select returns the table best matching preferences. Each preference may
// be a single tag or a full Accept-Language header.
func (c *Catalog) Select(preferences ...string) Table {
	if c == nil || len(c.tables) == 0 {
		return Table{}
	}
	_, idx := language.MatchStrings(c.matcher, preferences...)
	if idx < 0 || idx >= len(c.tables) {
		idx = 0
	}
	return c.tables[idx]
}

// Locales lists the catalog locales, fallback first.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.tags))
	for i, tag := range c.tags {
		out[i] = tag.String()
	}
	return out
}
