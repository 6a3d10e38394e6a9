package binding

import (
	"strings"

	"github.com/goliatone/go-uibind/pkg/labels"
)

const defaultIDPrefix = "__widget_"

// Option configures a Binder.
type Option func(*Binder)

// WithLocalizer sets the display-name lookup. Without it names are shown
// verbatim.
func WithLocalizer(l labels.Localizer) Option {
	return func(b *Binder) {
		if l != nil {
			b.localizer = l
		}
	}
}

// WithIDPrefix overrides the prefix of generated widget ids.
func WithIDPrefix(prefix string) Option {
	return func(b *Binder) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			b.idPrefix = trimmed
		}
	}
}
