package html

import (
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// StylesheetAsset is the theme asset key resolved into a stylesheet link.
const StylesheetAsset = "uibind.stylesheet"

// Option configures a Document.
type Option func(*Document)

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(d *Document) {
		d.title = strings.TrimSpace(title)
	}
}

// WithLang sets the html lang attribute.
func WithLang(lang string) Option {
	return func(d *Document) {
		if trimmed := strings.TrimSpace(lang); trimmed != "" {
			d.lang = trimmed
		}
	}
}

// WithTheme applies a go-theme renderer config: CSS variables become a
// :root style block, the theme name and variant become body data
// attributes and StylesheetAsset is resolved into a stylesheet link.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(d *Document) {
		d.theme = cfg
	}
}

// WithTemplatesFS replaces the embedded templates. The filesystem must
// provide document.tmpl, panel.tmpl and widget.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(d *Document) {
		if files != nil {
			d.templates = files
		}
	}
}
