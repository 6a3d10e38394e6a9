package html

import (
	"strconv"

	"github.com/goliatone/go-uibind/pkg/model"
	"github.com/goliatone/go-uibind/pkg/widgets"
)

// widgetContext flattens a view into template data. Numbers are formatted
// here so the markup carries plain range attributes.
func widgetContext(v widgets.View) map[string]any {
	ctx := map[string]any{
		"id":    v.ID,
		"key":   v.Key,
		"type":  string(v.Type),
		"label": v.Label,
	}
	switch v.Type {
	case model.WidgetSlider:
		ctx["display"] = v.Display
		ctx["min"] = formatNumber(v.Min)
		ctx["max"] = formatNumber(v.Max)
		ctx["position"] = formatNumber(v.Position)
	case model.WidgetCheckbox:
		ctx["checked"] = v.Checked
	case model.WidgetOption:
		options := make([]map[string]any, len(v.Options))
		for idx, label := range v.Options {
			options[idx] = map[string]any{
				"index":    idx,
				"label":    label,
				"selected": idx == v.Selected,
			}
		}
		ctx["options"] = options
	}
	return ctx
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
