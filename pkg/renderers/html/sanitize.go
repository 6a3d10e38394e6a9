package html

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
)

const labelFilter = "ui_label"

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy

	filterOnce sync.Once
	filterErr  error
)

// sanitizeLabel strips every tag from a display label. Labels come from
// query strings and catalogs and are never trusted as markup. The result is
// already escaped.
func sanitizeLabel(raw string) string {
	return strings.TrimSpace(labelSanitizer().Sanitize(raw))
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}

// registerFilters installs the label filter into pongo2's global filter
// table once per process.
func registerFilters() error {
	filterOnce.Do(func() {
		if pongo2.FilterExists(labelFilter) {
			return
		}
		filterErr = pongo2.RegisterFilter(labelFilter, func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsSafeValue(sanitizeLabel(in.String())), nil
		})
	})
	return filterErr
}
