package html

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// themeContext exposes the parts of a go-theme renderer config the page
// uses.
func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":     cfg.Theme,
		"variant":  cfg.Variant,
		"css_vars": cssVarsStyle(cfg.CSSVars),
	}
}

func stylesheetURLs(cfg *theme.RendererConfig, keys []string) []string {
	if cfg == nil || cfg.AssetURL == nil {
		return nil
	}
	var out []string
	for _, key := range keys {
		if resolved := strings.TrimSpace(cfg.AssetURL(key)); resolved != "" {
			out = append(out, resolved)
		}
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(sanitizeCSSValue(vars[key]))
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// sanitizeCSSValue keeps a declaration value from closing the rule or the
// style element.
func sanitizeCSSValue(value string) string {
	return strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "").Replace(strings.TrimSpace(value))
}
